// SPDX-License-Identifier: MIT
// Package: selfsim/dataset
//
// fetch.go — download and decompress a dataset into a plain edge list.
//
// Contract:
//   • Fetch is the only network entry point; it honors ctx cancellation
//     and reports download progress on stderr via a byte progress bar.
//   • KONECT archives (.tar.bz2) are unpacked in-stream: the first out.*
//     member is the edge list; a missing member is ErrNoEdgeList.
//   • SNAP archives (.gz) are a single gzip-compressed edge list.
//   • The edge list is written to <dir>/<name>.edges; on any failure the
//     partial file is removed — no partial artifacts, no retries (retry
//     policy belongs to callers).

package dataset

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
)

// Sentinel errors for fetching.
var (
	// ErrBadStatus indicates a non-200 HTTP response.
	ErrBadStatus = errors.New("dataset: unexpected HTTP status")

	// ErrNoEdgeList indicates a KONECT archive without an out.* member.
	ErrNoEdgeList = errors.New("dataset: no edge-list member in archive")
)

// edgeListExt is the suffix of materialized edge-list files.
const edgeListExt = ".edges"

// konectMemberPrefix is the basename prefix of the KONECT payload member.
const konectMemberPrefix = "out."

// Fetch downloads src into dir and returns the path of the materialized
// plain edge-list file. A nil logger falls back to log.Default().
//
// Errors: ErrBadSource (unknown format), ErrBadStatus, ErrNoEdgeList,
// wrapped transport/decompression errors.
// Complexity: O(archive size) time, O(1) memory beyond stream buffers.
func Fetch(ctx context.Context, logger *log.Logger, src Source, dir string) (string, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := src.validate(); err != nil {
		return "", err
	}

	logger.Info("fetching dataset", "dataset", src.Name, "url", src.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return "", fmt.Errorf("dataset: build request for %s: %w", src.Name, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("dataset: download %s: %w", src.Name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset: %s: status %s: %w", src.Name, resp.Status, ErrBadStatus)
	}

	// Progress is presentation only: it meters the compressed byte
	// stream and never alters it.
	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading "+src.Name)
	body := io.TeeReader(resp.Body, bar)

	path := filepath.Join(dir, src.Name+edgeListExt)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("dataset: create %s: %w", path, err)
	}

	switch src.Format {
	case FormatSNAP:
		err = extractGzip(body, out)
	case FormatKONECT:
		err = extractKonect(body, out)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Leave nothing half-written behind.
		_ = os.Remove(path)

		return "", fmt.Errorf("dataset: extract %s: %w", src.Name, err)
	}

	logger.Info("dataset ready", "dataset", src.Name, "path", path)

	return path, nil
}

// extractGzip decompresses a single gzip stream into w.
func extractGzip(r io.Reader, w io.Writer) error {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	if _, err = io.Copy(w, zr); err != nil {
		return err
	}

	return zr.Close()
}

// extractKonect decompresses a KONECT .tar.bz2 stream and copies its
// edge-list member into w.
func extractKonect(r io.Reader, w io.Writer) error {
	return copyKonectMember(tar.NewReader(bzip2.NewReader(r)), w)
}

// copyKonectMember walks a tar stream and copies the first out.* member
// into w. KONECT archives hold one directory with out.<name>, README and
// meta.<name>; only the out.* member is the edge list.
func copyKonectMember(tr *tar.Reader, w io.Writer) error {
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return ErrNoEdgeList
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if strings.HasPrefix(filepath.Base(hdr.Name), konectMemberPrefix) {
			_, err = io.Copy(w, tr)

			return err
		}
	}
}

// DefaultWeight is the weight assigned to every dataset edge; unweighted
// edge lists feed the weighted container through this explicit constant.
const DefaultWeight int64 = 1
