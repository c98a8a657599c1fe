package testutil

import "github.com/AntonioJCosta/ignorestat/internal/core/ports"

// MockReportSink is a mock implementation of ports.ReportSink.
type MockReportSink struct {
	WriteFunc func(report string) error
	Written   []string
}

func (m *MockReportSink) Write(report string) error {
	m.Written = append(m.Written, report)
	if m.WriteFunc != nil {
		return m.WriteFunc(report)
	}
	return nil
}

var _ ports.ReportSink = (*MockReportSink)(nil)
