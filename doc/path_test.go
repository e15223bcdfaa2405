package doc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbson/errs"
)

func pathTestDocument(t *testing.T) Cursor {
	t.Helper()

	root := NewMap().
		Put("devices", Array{
			NewMap().Put("id", String("dev-0")).Put("load", Double(0.25)),
			NewMap().Put("id", String("dev-1")).Put("load", Double(0.75)),
		}).
		Put("site", NewMap().Put("region", String("eu-west")))

	data, err := Encode(root)
	require.NoError(t, err)

	cur, err := NewCursor(data)
	require.NoError(t, err)

	return cur
}

func TestGoto_MatchesChainedNavigation(t *testing.T) {
	cur := pathTestDocument(t)

	got, err := cur.Goto(Key("devices"), Index(1), Key("id"))
	require.NoError(t, err)
	s, err := got.StringValue()
	require.NoError(t, err)
	require.Equal(t, "dev-1", s)

	devices, err := cur.MapGet("devices")
	require.NoError(t, err)
	second, err := devices.ArrayAt(1)
	require.NoError(t, err)
	chained, err := second.MapGet("id")
	require.NoError(t, err)

	chainedStr, err := chained.StringValue()
	require.NoError(t, err)
	require.Equal(t, s, chainedStr)
}

func TestGoto_NoSegmentsReturnsSelf(t *testing.T) {
	cur := pathTestDocument(t)

	got, err := cur.Goto()
	require.NoError(t, err)
	require.Equal(t, cur.Kind(), got.Kind())

	n, err := got.MapLen()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestGoto_Errors(t *testing.T) {
	cur := pathTestDocument(t)

	tests := []struct {
		name    string
		path    []PathSegment
		wantErr error
	}{
		{
			name:    "missing key",
			path:    []PathSegment{Key("devices"), Index(0), Key("missing")},
			wantErr: errs.ErrKeyNotFound,
		},
		{
			name:    "index out of range",
			path:    []PathSegment{Key("devices"), Index(5)},
			wantErr: errs.ErrIndexOutOfRange,
		},
		{
			name:    "index into a map",
			path:    []PathSegment{Key("site"), Index(0)},
			wantErr: errs.ErrTypeMismatch,
		},
		{
			name:    "key into a scalar",
			path:    []PathSegment{Key("devices"), Index(0), Key("id"), Key("deeper")},
			wantErr: errs.ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cur.Goto(tt.path...)
			require.ErrorIs(t, err, tt.wantErr)
			require.Contains(t, err.Error(), "path segment")
		})
	}
}
