package hostinfo

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Report describes the machine ohosinfo is running on. It stands in for the
// native device attributes when no OpenHarmony device is present, e.g. on a
// development host.
type Report struct {
	Hostname        string  `json:"hostname"`
	OS              string  `json:"os"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	KernelVersion   string  `json:"kernel_version"`
	Arch            string  `json:"arch"`
	UptimeSeconds   uint64  `json:"uptime_seconds"`
	CPUModel        string  `json:"cpu_model,omitempty"`
	CPUCores        int     `json:"cpu_cores"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryPercent   float64 `json:"memory_percent"`
	DiskTotal       uint64  `json:"disk_total"`
	DiskPercent     float64 `json:"disk_percent"`
}

// Collect gathers the host report. Host identity is required; CPU, memory
// and disk figures are best-effort and left zero when unreadable.
func Collect() (*Report, error) {
	hi, err := host.Info()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Hostname:        hi.Hostname,
		OS:              hi.OS,
		Platform:        hi.Platform,
		PlatformVersion: hi.PlatformVersion,
		KernelVersion:   hi.KernelVersion,
		Arch:            hi.KernelArch,
		UptimeSeconds:   hi.Uptime,
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		report.CPUModel = infos[0].ModelName
	}
	if count, err := cpu.Counts(true); err == nil {
		report.CPUCores = count
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		report.MemoryTotal = vm.Total
		report.MemoryPercent = vm.UsedPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		report.DiskTotal = du.Total
		report.DiskPercent = du.UsedPercent
	}

	return report, nil
}
