// internal/split/split_test.go
package split

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readprep-core/fasta"
	"readprep-core/fastq"
)

func TestChunkNames(t *testing.T) {
	assert.Equal(t, []string{"r.fq.0", "r.fq.1"}, ChunkNames("r.fq", 2))
}

func TestFastqRoundRobin(t *testing.T) {
	in := "@foo\nAAA\n+foo\n!!!\n@bar\nCCC\n+bar\n###\n"
	var a, b bytes.Buffer
	n, err := Fastq(fastq.NewReader(strings.NewReader(in)), []io.Writer{&a, &b})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	// The separator annotation is expunged on re-emission.
	assert.Equal(t, "@foo\nAAA\n+\n!!!\n", a.String())
	assert.Equal(t, "@bar\nCCC\n+\n###\n", b.String())
}

func TestFastaRoundRobin(t *testing.T) {
	in := ">foo\nAAA\nAAA\n>bar\nCCC\n>baz\nGGG"
	var a, b, c bytes.Buffer
	n, err := Fasta(fasta.NewReader(strings.NewReader(in)), []io.Writer{&a, &b, &c})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, ">foo\nAAAAAA\n", a.String())
	assert.Equal(t, ">bar\nCCC\n", b.String())
	assert.Equal(t, ">baz\nGGG\n", c.String())
}
