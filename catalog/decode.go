/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package catalog walks the PDF document catalog to produce the outline
// tree, the named-destination table, and the per-page annotation table.
package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/useblocks/libpdf/common"
	"golang.org/x/text/encoding/unicode"
)

// pdfDocEncoding maps the PDFDocEncoding code points that differ from
// Latin-1 to Unicode: the accent glyphs at 0x18-0x1F and the punctuation and
// ligature block at 0x80-0xA0. Every other byte decodes as its Latin-1 code
// point. Table per Appendix D of the PDF Reference.
var pdfDocEncoding = map[byte]rune{
	0x18: '˘', 0x19: 'ˇ', 0x1A: 'ˆ', 0x1B: '˙',
	0x1C: '˝', 0x1D: '˛', 0x1E: '˚', 0x1F: '˜',
	0x80: '•', 0x81: '†', 0x82: '‡', 0x83: '…',
	0x84: '—', 0x85: '–', 0x86: 'ƒ', 0x87: '⁄',
	0x88: '‹', 0x89: '›', 0x8A: '−', 0x8B: '‰',
	0x8C: '„', 0x8D: '“', 0x8E: '”', 0x8F: '‘',
	0x90: '’', 0x91: '‚', 0x92: '™', 0x93: 'ﬁ',
	0x94: 'ﬂ', 0x95: 'Ł', 0x96: 'Œ', 0x97: 'Š',
	0x98: 'Ÿ', 0x99: 'Ž', 0x9A: 'ı', 0x9B: 'ł',
	0x9C: 'œ', 0x9D: 'š', 0x9E: 'ž', 0xA0: '€',
}

// DecodeText decodes PDF string bytes that carry no mandated encoding,
// detecting UTF-16BE (byte-order-mark 0xFE 0xFF), plain UTF-8, or falling
// back to PDFDocEncoding/Latin-1. On outright failure it lossily decodes
// and logs a warning rather than erroring -- title decode failures are
// recovered locally, never surfaced.
func DecodeText(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		text, err := decoder.String(string(raw[2:]))
		if err == nil {
			return text
		}
		common.Log.Warning("lossy UTF-16BE decode of title bytes: %v", err)
		return lossyDecode(raw)
	}

	if utf8.Valid(raw) {
		return string(raw)
	}

	return decodePDFDocEncoding(raw)
}

func decodePDFDocEncoding(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if r, ok := pdfDocEncoding[c]; ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}

// lossyDecode keeps ASCII bytes and escapes every byte >= 0x80 as \xNN, used only
// when the UTF-16BE path itself fails to decode.
func lossyDecode(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c < 0x80 {
			b.WriteByte(c)
		} else {
			b.WriteString("\\x")
			const hex = "0123456789abcdef"
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xF])
		}
	}
	return b.String()
}
