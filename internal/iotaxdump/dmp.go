package iotaxdump

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
)

const (
	lineageFile = "rankedlineage.dmp"
	mergedFile  = "merged.dmp"

	fieldSep = "\t|\t"
	lineEnd  = "\t|"
)

// resolvePath returns path itself for a file, or path/name for a
// directory.
func resolvePath(path, name string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, name)
	}
	return path
}

// splitLine breaks a dump line into fields.
func splitLine(line string) []string {
	line = strings.TrimRight(line, "\r")
	line = strings.TrimSuffix(line, lineEnd)
	res := strings.Split(line, fieldSep)
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// readDump calls fn for every non-empty line of a dump file. Line numbers
// start at 1.
func (b *builder) readDump(
	path, prefix string,
	fn func(lineNum int, fields []string) error,
) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if b.cfg.Build.WithProgress {
		if info, err := f.Stat(); err == nil {
			bar := newProgressBar(info.Size(), prefix)
			defer bar.Finish()
			r = bar.NewProxyReader(f)
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err = fn(lineNum, splitLine(line)); err != nil {
			return err
		}
	}
	return sc.Err()
}

// newProgressBar creates a new byte progress bar with consistent
// settings.
func newProgressBar(
	total int64,
	prefix string,
) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
