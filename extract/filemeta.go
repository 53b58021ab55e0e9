/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extract

import (
	"github.com/useblocks/libpdf/catalog"
	"github.com/useblocks/libpdf/common"
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/model"
)

// buildFileMeta decodes the classic PDF Info dictionary (Title, Author,
// Subject, Creator, Producer, Keywords, CreationDate, ModDate, Trapped)
// into a model.FileMeta. info is nil when the source document carries no
// Info dictionary at all, which yields the zero value -- every field is
// optional per the PDF spec.
func buildFileMeta(info *core.PdfObjectDictionary, r core.Resolver) model.FileMeta {
	var meta model.FileMeta
	if info == nil {
		return meta
	}

	meta.Title = infoText(info, "Title", r)
	meta.Author = infoText(info, "Author", r)
	meta.Subject = infoText(info, "Subject", r)
	meta.Creator = infoText(info, "Creator", r)
	meta.Producer = infoText(info, "Producer", r)
	meta.Keywords = infoText(info, "Keywords", r)
	meta.Trapped = infoText(info, "Trapped", r)

	if raw := infoText(info, "CreationDate", r); raw != "" {
		if t, err := catalog.ParseInfoDate(raw); err == nil {
			meta.CreationDate = t
		} else {
			common.Log.Warning("Info/CreationDate %q did not parse: %v", raw, err)
		}
	}
	if raw := infoText(info, "ModDate", r); raw != "" {
		if t, err := catalog.ParseInfoDate(raw); err == nil {
			meta.ModDate = t
		} else {
			common.Log.Warning("Info/ModDate %q did not parse: %v", raw, err)
		}
	}

	return meta
}

func infoText(dict *core.PdfObjectDictionary, key core.PdfObjectName, r core.Resolver) string {
	obj := dict.Get(key)
	if obj == nil {
		return ""
	}
	if ref, ok := obj.(*core.PdfObjectReference); ok {
		resolved, err := ref.Resolve(r)
		if err != nil {
			return ""
		}
		obj = resolved
	}
	s, ok := core.GetString(obj)
	if !ok {
		return ""
	}
	return catalog.DecodeText(s.Bytes())
}
