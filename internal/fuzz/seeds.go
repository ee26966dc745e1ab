package fuzztests

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"1 + 2 - (4 * 5 + -20 - 40) / -60",
	"abc123",
	"-5",
	"(-5)",
	"1 - - -5",
	"5 % 2",
	"170141183460469231731687303715884105728",
	"x\t*\n(y+1)",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// каждая строка *.txt файлов в testdata является отдельным seed
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		sc := bufio.NewScanner(bytes.NewReader(src))
		for sc.Scan() {
			f.Add(clampSeed(sc.Bytes()))
		}
		return nil
	})
}

func clampSeed(b []byte) []byte {
	if len(b) > maxSeedBytes {
		b = b[:maxSeedBytes]
	}
	return append([]byte(nil), b...)
}
