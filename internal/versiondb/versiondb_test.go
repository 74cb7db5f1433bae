package versiondb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every real version/level entry must describe a non-trivial Reed-Solomon
// block: total bytes strictly exceed data bytes, leaving room for parity.
func TestAllEntriesHaveParityRoom(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		info := Table[v]
		for level := ECCLevelM; level <= ECCLevelQ; level++ {
			p := info.ECC[level]
			assert.Greaterf(t, p.BS, p.DW, "version %d level %d: BS=%d DW=%d", v, level, p.BS, p.DW)
			assert.Greater(t, p.NS, 0, "version %d level %d: NS must be positive", v, level)
		}
	}
}

func TestForLooksUpByVersionAndLevel(t *testing.T) {
	p := For(1, ECCLevelM)
	assert.Equal(t, RSParams{BS: 26, DW: 16, NS: 1}, p)

	p = For(40, ECCLevelH)
	assert.Equal(t, RSParams{BS: 45, DW: 15, NS: 20}, p)
}

func TestDataBytesIncreasesWithVersion(t *testing.T) {
	for v := MinVersion + 1; v <= MaxVersion; v++ {
		assert.Greater(t, Table[v].DataBytes, Table[v-1].DataBytes, "version %d should hold more data than version %d", v, v-1)
	}
}
