/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetHarvestCmd_Basic verifies command identity.
func TestGetHarvestCmd_Basic(t *testing.T) {
	cmd := getHarvestCmd()

	require.NotNil(t, cmd, "Harvest command should exist")
	assert.Equal(t, "harvest", cmd.Use,
		"Command name should be harvest")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}

// TestGetHarvestCmd_Descriptions verifies help content.
func TestGetHarvestCmd_Descriptions(t *testing.T) {
	cmd := getHarvestCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Long, "BacDive",
		"Long description should mention BacDive")
	assert.Contains(t, cmd.Long, "s__",
		"Long description should mention the lineage segment")
}

// TestGetHarvestCmd_InputFlag verifies --input flag exists.
func TestGetHarvestCmd_InputFlag(t *testing.T) {
	cmd := getHarvestCmd()

	flag := cmd.Flags().Lookup("input")
	require.NotNil(t, flag, "--input flag should exist")
	assert.Equal(t, "i", flag.Shorthand,
		"Short form should be -i")
}

// TestGetHarvestCmd_OutputFlags verifies output
// destination flags exist.
func TestGetHarvestCmd_OutputFlags(t *testing.T) {
	cmd := getHarvestCmd()

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag, "--output flag should exist")
	assert.Equal(t, "o", flag.Shorthand,
		"Short form should be -o")

	flag = cmd.Flags().Lookup("sqlite")
	require.NotNil(t, flag, "--sqlite flag should exist")
	assert.Contains(t, flag.Usage, "SQLite",
		"Usage should mention SQLite")
}

// TestGetHarvestCmd_LimitFlag verifies --limit flag exists.
func TestGetHarvestCmd_LimitFlag(t *testing.T) {
	cmd := getHarvestCmd()

	flag := cmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "--limit flag should exist")
	assert.Equal(t, "l", flag.Shorthand,
		"Short form should be -l")
	assert.Equal(t, "0", flag.DefValue,
		"Default should be 0 (no limit)")
}

// TestGetHarvestCmd_CacheFlag verifies --no-cache flag
// exists.
func TestGetHarvestCmd_CacheFlag(t *testing.T) {
	cmd := getHarvestCmd()

	flag := cmd.Flags().Lookup("no-cache")
	require.NotNil(t, flag, "--no-cache flag should exist")
	assert.Contains(t, flag.Usage, "cache",
		"Usage should mention the cache")
}

// TestGetNamesCmd_Basic verifies the names preview command.
func TestGetNamesCmd_Basic(t *testing.T) {
	cmd := getNamesCmd()

	require.NotNil(t, cmd, "Names command should exist")
	assert.Equal(t, "names", cmd.Use,
		"Command name should be names")
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	flag := cmd.Flags().Lookup("input")
	require.NotNil(t, flag, "--input flag should exist")
	assert.Equal(t, "i", flag.Shorthand,
		"Short form should be -i")
}
