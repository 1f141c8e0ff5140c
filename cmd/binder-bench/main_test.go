package main

import "testing"

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		c, n    int
		wantErr bool
	}{
		{c: 50, n: 100000},
		{c: 1, n: 1},
		{c: 0, n: 100, wantErr: true},
		{c: -3, n: 100, wantErr: true},
		{c: 10, n: 5, wantErr: true},
	}
	for _, tt := range tests {
		err := validateFlags(tt.c, tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFlags(%d, %d) = %v, wantErr %v", tt.c, tt.n, err, tt.wantErr)
		}
	}
}
