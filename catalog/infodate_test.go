/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseInfoDateWithOffset(t *testing.T) {
	ts, err := ParseInfoDate("D:20210120163651-05'00'")
	require.NoError(t, err)
	require.Equal(t, 2021, ts.Year())
	require.Equal(t, time.Month(1), ts.Month())
	require.Equal(t, 20, ts.Day())
	require.Equal(t, 16, ts.Hour())
	require.Equal(t, 36, ts.Minute())
	require.Equal(t, 51, ts.Second())

	_, offset := ts.Zone()
	require.Equal(t, -5*3600, offset)
}

func TestParseInfoDateUTC(t *testing.T) {
	ts, err := ParseInfoDate("D:20200101000000Z")
	require.NoError(t, err)
	require.Equal(t, time.UTC, ts.Location())
}
