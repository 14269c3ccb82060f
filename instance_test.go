package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadPIDFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		write   bool
		want    int
		wantErr bool
	}{
		{"valid pid", "1234", true, 1234, false},
		{"pid with whitespace", " 567\n", true, 567, false},
		{"garbage", "not-a-pid", true, 0, true},
		{"empty file", "", true, 0, true},
		{"missing file", "", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".pid")
			if tt.write {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := readPIDFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("pid = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInstanceLockRoundTrip(t *testing.T) {
	oldDir := panelDir
	t.Cleanup(func() { panelDir = oldDir })
	panelDir = t.TempDir()

	if err := acquireInstanceLock(); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	if _, err := os.Stat(pidFilePath()); err != nil {
		t.Errorf("PID file not written: %v", err)
	}

	releaseInstanceLock()
	if _, err := os.Stat(pidFilePath()); !os.IsNotExist(err) {
		t.Error("PID file should be removed on release")
	}
	if _, err := os.Stat(lockFilePath()); !os.IsNotExist(err) {
		t.Error("lock file should be removed on release")
	}
}
