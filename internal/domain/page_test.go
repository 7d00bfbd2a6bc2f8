package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDecodeBlocks(t *testing.T) {
	data := datatypes.JSON(`[
		{"blockType": "content", "body": "Welcome"},
		{"blockType": "programGrid", "heading": "Camps", "programType": "camp"},
		{"blockType": "videoEmbed", "url": "https://example.com"}
	]`)

	blocks, err := DecodeBlocks(data)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, BlockContent, blocks[0].BlockType)
	assert.Equal(t, BlockProgramGrid, blocks[1].BlockType)
	// Unknown types survive decoding; the renderer decides what to do with them.
	assert.Equal(t, BlockType("videoEmbed"), blocks[2].BlockType)

	// Raw carries the full record for per-type decoding.
	assert.Contains(t, string(blocks[1].Raw), `"heading": "Camps"`)
}

func TestDecodeBlocks_Empty(t *testing.T) {
	blocks, err := DecodeBlocks(nil)
	require.NoError(t, err)
	assert.Nil(t, blocks)
}

func TestDecodeBlocks_Malformed(t *testing.T) {
	_, err := DecodeBlocks(datatypes.JSON(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestDecodeLinks(t *testing.T) {
	links, err := DecodeLinks(datatypes.JSON(`[{"label": "Register", "url": "/programs"}]`))
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Register", links[0].Label)
	assert.Equal(t, "/programs", links[0].URL)
}
