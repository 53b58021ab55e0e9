/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import "github.com/useblocks/libpdf/core"

// fakeResolver resolves object numbers to pre-registered objects, mimicking
// the PDF Parser collaborator for hand-built object-graph fixtures.
type fakeResolver struct {
	objects map[int64]core.PdfObject
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{objects: map[int64]core.PdfObject{}}
}

func (r *fakeResolver) register(num int64, obj core.PdfObject) *core.PdfObjectReference {
	r.objects[num] = obj
	return &core.PdfObjectReference{ObjectNumber: num}
}

func (r *fakeResolver) Resolve(ref *core.PdfObjectReference) (core.PdfObject, error) {
	if obj, ok := r.objects[ref.ObjectNumber]; ok {
		return obj, nil
	}
	return core.MakeNull(), nil
}

// fakePages maps page object references to page numbers/heights for a
// small fixture document.
type fakePages struct {
	refToNum map[core.PdfObjectReference]int
	heights  map[int]float64
}

func newFakePages() *fakePages {
	return &fakePages{refToNum: map[core.PdfObjectReference]int{}, heights: map[int]float64{}}
}

func (p *fakePages) add(ref core.PdfObjectReference, number int, height float64) {
	p.refToNum[ref] = number
	p.heights[number] = height
}

func (p *fakePages) PageNumberForRef(ref core.PdfObjectReference) (int, bool) {
	n, ok := p.refToNum[ref]
	return n, ok
}

func (p *fakePages) PageHeight(number int) (float64, bool) {
	h, ok := p.heights[number]
	return h, ok
}
