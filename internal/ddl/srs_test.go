package ddl

import "testing"

func TestResolveSRS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		authority  string
		identifier string
		wantCode   int
		wantOK     bool
	}{
		{authority: "EPSG", identifier: "2056", wantCode: 2056, wantOK: true},
		{authority: "epsg", identifier: "4326", wantCode: 4326, wantOK: true},
		{authority: "EpSg", identifier: "-1", wantCode: -1, wantOK: true},
		{authority: "EPSG", identifier: "0", wantCode: 0, wantOK: true},
		{authority: "", identifier: "2056"},
		{authority: "EPSG", identifier: ""},
		{authority: "ESRI", identifier: "102100"},
		{authority: "EPSG:", identifier: "2056"},
		{authority: "EPSG", identifier: "20x6"},
		{authority: "EPSG", identifier: " 2056"},
		{authority: "EPSG", identifier: "2056.0"},
	}

	for _, tt := range tests {
		t.Run(tt.authority+"/"+tt.identifier, func(t *testing.T) {
			code, ok := ResolveSRS(tt.authority, tt.identifier)
			if ok != tt.wantOK || code != tt.wantCode {
				t.Errorf("ResolveSRS(%q, %q) = (%d, %v), want (%d, %v)",
					tt.authority, tt.identifier, code, ok, tt.wantCode, tt.wantOK)
			}
		})
	}
}
