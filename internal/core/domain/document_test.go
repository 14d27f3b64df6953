package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentInfo_JSON(t *testing.T) {
	info := DocumentInfo{Path: "/plans/ground.pdf", Format: "pdf", Width: 2480, Height: 3508}

	data, err := json.Marshal(info)
	require.NoError(t, err)

	assert.JSONEq(t, `{"path":"/plans/ground.pdf","format":"pdf","width":2480,"height":3508}`, string(data))
}
