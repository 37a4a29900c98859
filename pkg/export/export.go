// Package export turns the edited letter text into shareable
// documents. The text goes in byte-for-byte; the only transformation
// applied is the escaping the embedding format itself requires.
package export

import (
	"fmt"
	"html"
	"os"
)

// printHTMLHeader is the print-ready envelope: A4 pages, 2cm margins,
// Times New Roman, letter text preformatted.
const printHTMLHeader = `<!DOCTYPE html>
<html>
  <head>
    <title>Document</title>
    <style>
      @page {
        size: A4;
        margin: 2cm;
      }
      body {
        font-family: 'Times New Roman', Times, serif;
        font-size: 12pt;
        line-height: 1.6;
        color: #000;
        max-width: 21cm;
        margin: 0 auto;
        padding: 2cm;
      }
      pre {
        white-space: pre-wrap;
        font-family: 'Times New Roman', Times, serif;
      }
    </style>
  </head>
  <body>
`

const printHTMLFooter = `  </body>
</html>
`

// wordHeader is the Word-compatible envelope carrying the Office XML
// namespaces so .doc consumers accept the file.
const wordHeader = `<html xmlns:o='urn:schemas-microsoft-com:office:office'
      xmlns:w='urn:schemas-microsoft-com:office:word'
      xmlns='http://www.w3.org/TR/REC-html40'>
<head>
  <meta charset='utf-8'>
  <title>Document</title>
  <style>
    body {
      font-family: 'Times New Roman', Times, serif;
      font-size: 12pt;
      line-height: 1.6;
    }
    pre {
      white-space: pre-wrap;
      font-family: 'Times New Roman', Times, serif;
    }
  </style>
</head>
<body>
`

const wordFooter = `</body></html>`

// PrintHTML wraps the letter text in the print-ready HTML document.
func PrintHTML(text string) string {
	return printHTMLHeader + "    <pre>" + html.EscapeString(text) + "</pre>\n" + printHTMLFooter
}

// WordDoc builds a minimal Word-compatible document. The UTF-8 BOM up
// front is what convinces Word to read the HTML as UTF-8.
func WordDoc(text string) []byte {
	doc := "\ufeff" + wordHeader + "<pre>" + html.EscapeString(text) + "</pre>" + wordFooter
	return []byte(doc)
}

// WriteHTML writes the print-ready document to path.
func WriteHTML(path, text string) error {
	if err := os.WriteFile(path, []byte(PrintHTML(text)), 0644); err != nil {
		return fmt.Errorf("failed to write HTML document: %w", err)
	}
	return nil
}

// WriteDoc writes the Word-compatible document to path.
func WriteDoc(path, text string) error {
	if err := os.WriteFile(path, WordDoc(text), 0644); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}
	return nil
}
