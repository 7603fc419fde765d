// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"readprep/internal/writers": {
			"readprep/internal/trimapp", "readprep/internal/demuxapp",
			"readprep/internal/convertapp", "readprep/internal/checkapp",
			"readprep/internal/splitapp", "readprep/internal/mergeapp",
			"readprep/internal/trimcli", "readprep/internal/demuxcli",
			"readprep/internal/convertcli", "readprep/internal/checkcli",
			"readprep/internal/splitcli", "readprep/internal/mergecli",
			"readprep/internal/clibase", "readprep/internal/cmdutil",
			"readprep/cmd/",
		},
		"readprep/internal/fileio": {
			"readprep/internal/trimapp", "readprep/internal/demuxapp",
			"readprep/internal/convertapp", "readprep/internal/checkapp",
			"readprep/internal/splitapp", "readprep/internal/mergeapp",
			"readprep/internal/trimcli", "readprep/internal/demuxcli",
			"readprep/internal/convertcli", "readprep/internal/checkcli",
			"readprep/internal/splitcli", "readprep/internal/mergecli",
			"readprep/internal/clibase", "readprep/internal/cmdutil",
			"readprep/internal/writers", "readprep/cmd/",
		},
		"readprep/internal/clibase": {
			"readprep/internal/trimapp", "readprep/internal/demuxapp",
			"readprep/internal/convertapp", "readprep/internal/checkapp",
			"readprep/internal/splitapp", "readprep/internal/mergeapp",
			"readprep/internal/writers", "readprep/internal/fileio",
			"readprep/cmd/",
		},
		"readprep/internal/cmdutil": {
			"readprep/internal/trimapp", "readprep/internal/demuxapp",
			"readprep/internal/convertapp", "readprep/internal/checkapp",
			"readprep/internal/splitapp", "readprep/internal/mergeapp",
			"readprep/internal/trimcli", "readprep/internal/demuxcli",
			"readprep/internal/convertcli", "readprep/internal/checkcli",
			"readprep/internal/splitcli", "readprep/internal/mergecli",
			"readprep/internal/fileio", "readprep/cmd/",
		},
		"readprep/internal/split": {
			"readprep/internal/trimapp", "readprep/internal/demuxapp",
			"readprep/internal/convertapp", "readprep/internal/checkapp",
			"readprep/internal/splitapp", "readprep/internal/mergeapp",
			"readprep/internal/clibase", "readprep/cmd/",
		},
		"readprep/internal/merge": {
			"readprep/internal/trimapp", "readprep/internal/demuxapp",
			"readprep/internal/convertapp", "readprep/internal/checkapp",
			"readprep/internal/splitapp", "readprep/internal/mergeapp",
			"readprep/internal/clibase", "readprep/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "readprep/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "readprep/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
