package ports

// ReportSink delivers the final formatted report to its destination.
type ReportSink interface {
	Write(report string) error
}
