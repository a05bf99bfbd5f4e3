// File: konect_test.go
// White-box tests for the KONECT tar walk: member selection and the
// missing-member error. The bzip2 layer is a stdlib pass-through and is
// not re-tested here.
package dataset

import (
	"archive/tar"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTar assembles an in-memory tar archive from name→content pairs,
// in order. A trailing slash marks a directory entry.
func buildTar(t *testing.T, members [][2]string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, m := range members {
		name, content := m[0], m[1]
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}
		if strings.HasSuffix(name, "/") {
			hdr.Typeflag = tar.TypeDir
			hdr.Size = 0
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if hdr.Typeflag == tar.TypeReg {
			_, err := tw.Write([]byte(content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())

	return &buf
}

func TestCopyKonectMember_PicksEdgeList(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	const edges = "% sym\n1 2\n2 3\n"
	archive := buildTar(t, [][2]string{
		{"moreno_zebra/", ""},
		{"moreno_zebra/README.moreno_zebra", "about this dataset"},
		{"moreno_zebra/meta.moreno_zebra", "name: zebra"},
		{"moreno_zebra/out.moreno_zebra", edges},
	})

	var out bytes.Buffer
	require.NoError(copyKonectMember(tar.NewReader(archive), &out))
	require.Equal(edges, out.String())
}

func TestCopyKonectMember_NoEdgeList(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	archive := buildTar(t, [][2]string{
		{"pkg/", ""},
		{"pkg/README", "nothing here"},
	})

	var out bytes.Buffer
	err := copyKonectMember(tar.NewReader(archive), &out)
	require.ErrorIs(err, ErrNoEdgeList)
	require.Zero(out.Len())
}
