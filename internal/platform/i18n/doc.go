// Package i18n defines the closed set of languages the material catalog is
// translated into.
//
// Every material carries one display name per supported tag, so adding a tag
// here means adding a name to every material in the table.
package i18n
