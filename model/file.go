/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "time"

// FileMeta carries the classic PDF Info dictionary fields. None are
// required; any may be the zero value if the source document omitted it.
type FileMeta struct {
	Author       string
	Title        string
	Subject      string
	Creator      string
	Producer     string
	Keywords     string
	CreationDate time.Time
	ModDate      time.Time
	Trapped      string
}

// File describes the source document: its name, on-disk path, page count
// and its metadata. It does not record the crop margins used during
// extraction. One File per Root.
type File struct {
	Name      string
	Path      string
	PageCount int
	Meta      FileMeta
}
