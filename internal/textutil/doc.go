// Package textutil holds the text helpers shared by classification and path
// building. Document text is NFC-normalized before any comparison.
package textutil
