// Package systeminfo captures a snapshot of the host a scan ran on. The
// snapshot rides along in the report envelope so a finding can always be tied
// back to the machine and moment that produced it.
package systeminfo

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"docsentry/logger"
)

type SystemInfo struct {
	Hostname        string `json:"hostname,omitempty"`
	OS              string `json:"os"`
	Platform        string `json:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty"`
	Arch            string `json:"arch"`
	NumCPU          int    `json:"num_cpu"`
	TotalMemory     uint64 `json:"total_memory_bytes,omitempty"`
	UptimeSeconds   uint64 `json:"uptime_seconds,omitempty"`
	CollectedAt     string `json:"collected_at"`
}

// Collect gathers what it can about the current host. Individual probe
// failures are logged and leave their fields empty; Collect never fails as a
// whole.
func Collect() *SystemInfo {
	info := &SystemInfo{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		CollectedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if hi, err := host.Info(); err != nil {
		logger.Warnf("Failed to gather host info: %v", err)
	} else {
		info.Hostname = hi.Hostname
		info.Platform = hi.Platform
		info.PlatformVersion = hi.PlatformVersion
		info.KernelVersion = hi.KernelVersion
		info.UptimeSeconds = hi.Uptime
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		logger.Warnf("Failed to gather memory info: %v", err)
	} else {
		info.TotalMemory = vm.Total
	}

	return info
}
