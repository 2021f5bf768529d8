package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quayside/navstack/pkg/navigation"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []navigation.Destination
	}{
		{
			name: "single kind",
			raw:  "settings",
			want: []navigation.Destination{navigation.NewDest("settings")},
		},
		{
			name: "kind with param",
			raw:  "profile/123",
			want: []navigation.Destination{navigation.NewDestParam("profile", "123")},
		},
		{
			name: "deep link replay",
			raw:  "profile/123,settings",
			want: []navigation.Destination{
				navigation.NewDestParam("profile", "123"),
				navigation.NewDest("settings"),
			},
		},
		{
			name: "whitespace and empty segments ignored",
			raw:  " profile/1 , ,settings ",
			want: []navigation.Destination{
				navigation.NewDestParam("profile", "1"),
				navigation.NewDest("settings"),
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePath(tt.raw))
		})
	}
}
