package main

import (
	"testing"

	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	testCases := []struct {
		name        string
		origin      string
		destination string
		hop         string
		wantOrigin  datastructure.Index
		wantDest    datastructure.Index
		wantHop     uint64
		wantErr     bool
	}{
		{name: "configured hop", origin: "0", destination: "31", hop: "", wantOrigin: 0, wantDest: 31, wantHop: 3},
		{name: "explicit hop", origin: "4", destination: "9", hop: "7", wantOrigin: 4, wantDest: 9, wantHop: 7},
		{name: "origin does not fit a node id", origin: "4294967296", destination: "31", wantErr: true},
		{name: "negative destination", origin: "0", destination: "-1", wantErr: true},
		{name: "bad hop", origin: "0", destination: "31", hop: "five", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			q, err := parseQuery(tt.origin, tt.destination, tt.hop, 3)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOrigin, q.Origin)
			assert.Equal(t, tt.wantDest, q.Destination)
			assert.Equal(t, tt.wantHop, q.MaxHopDistance)
		})
	}
}
