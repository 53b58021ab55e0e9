/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDocumentedContract(t *testing.T) {
	p := Default()
	require.Equal(t, 0.3, p.HeaderFooterOccurrencePercentage)
	require.Equal(t, 65.0, p.TargetCoorTolerance)
	require.Equal(t, 15.0, p.FigureMinWidth)
	require.Empty(t, p.PageRange)
}

func TestPageIncludedWithNoRestriction(t *testing.T) {
	p := Default()
	require.True(t, p.PageIncluded(1))
	require.True(t, p.PageIncluded(9999))
}

func TestParsePageRangeAndPageIncluded(t *testing.T) {
	ranges, err := ParsePageRange("1,3-5,9")
	require.NoError(t, err)
	require.Equal(t, []PageRange{{1, 1}, {3, 5}, {9, 9}}, ranges)

	p := Default()
	p.PageRange = ranges
	require.True(t, p.PageIncluded(1))
	require.True(t, p.PageIncluded(4))
	require.False(t, p.PageIncluded(2))
	require.True(t, p.PageIncluded(9))
	require.False(t, p.PageIncluded(10))
}

func TestParsePageRangeRejectsInvertedRange(t *testing.T) {
	_, err := ParsePageRange("5-3")
	require.Error(t, err)
}

func TestParsePageRangeEmptyMeansUnrestricted(t *testing.T) {
	ranges, err := ParsePageRange("")
	require.NoError(t, err)
	require.Nil(t, ranges)
}
