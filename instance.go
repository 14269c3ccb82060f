package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/shirou/gopsutil/process"
)

var (
	instanceLock *flock.Flock // Held while this panel instance runs
)

func lockFilePath() string {
	return filepath.Join(panelDir, "panel.lock")
}

func pidFilePath() string {
	return filepath.Join(panelDir, "panel.pid")
}

// acquireInstanceLock prevents a second panel from starting against the same
// directory. A stale PID file left by a crashed instance is cleaned up.
func acquireInstanceLock() error {
	if pid, err := readPIDFile(pidFilePath()); err == nil && pid != 0 {
		proc, procErr := process.NewProcess(int32(pid))
		if procErr == nil {
			running, _ := proc.IsRunning()
			if running {
				return fmt.Errorf("another panel instance is already running with PID %d", pid)
			}
		}
		// Process is not running, clean up stale PID file
		log.Printf("Stale PID file found (PID %d is not running), removing and proceeding", pid)
		os.Remove(pidFilePath())
		os.Remove(lockFilePath())
	}

	instanceLock = flock.New(lockFilePath())
	locked, err := instanceLock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", lockFilePath(), err)
	}
	if !locked {
		return fmt.Errorf("another panel instance holds %s", lockFilePath())
	}

	if err := os.WriteFile(pidFilePath(), []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		log.Printf("Failed to write PID file: %v", err)
	}
	return nil
}

func releaseInstanceLock() {
	log.Println("Released panel lock")
	if instanceLock != nil {
		instanceLock.Unlock()
		instanceLock = nil
	}
	os.Remove(lockFilePath())
	os.Remove(pidFilePath())
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return 0, fmt.Errorf("no PID file at %s", path)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse PID from PID file: %w", err)
	}
	return pid, nil
}
