/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf, "text"))
	assert.True(t, strings.HasPrefix(buf.String(), "figvars "))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf, "json"))

	var info map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "gitCommit")
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, write(&bytes.Buffer{}, "yaml"))
}
