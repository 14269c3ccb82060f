package main

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
)

// MemorySummary describes current system memory usage, for the System menu.
func MemorySummary() string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Sprintf("Memory information unavailable: %v", err)
	}
	return fmt.Sprintf("Total: %d MB\nUsed: %d MB (%.1f%%)\nAvailable: %d MB",
		vm.Total/1024/1024, vm.Used/1024/1024, vm.UsedPercent, vm.Available/1024/1024)
}

// ProcessSummary describes the panel's own process, for the System menu.
func ProcessSummary() string {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return fmt.Sprintf("Process information unavailable: %v", err)
	}

	summary := fmt.Sprintf("PID: %d", proc.Pid)
	if info, err := proc.MemoryInfo(); err == nil && info != nil {
		summary += fmt.Sprintf("\nResident memory: %d MB", info.RSS/1024/1024)
	}
	if pct, err := proc.CPUPercent(); err == nil {
		summary += fmt.Sprintf("\nCPU: %.1f%%", pct)
	}
	return summary
}
