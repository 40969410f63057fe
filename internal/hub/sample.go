package hub

// SampleMessage is the built-in announcement used when no message file is
// supplied on the command line.
const SampleMessage = `Important Update: System Maintenance Completed

We have successfully completed the scheduled system maintenance that began at 2:00 AM EST.
All services are now fully operational and performing optimally. During the maintenance window,
we implemented several critical security updates, performance optimizations, and new feature
enhancements that will improve your user experience.

Key improvements include:
- Enhanced security protocols
- 25% faster response times
- New dashboard features
- Improved mobile compatibility
- Advanced reporting capabilities

If you experience any issues or have questions, please contact our support team at
support@company.com or call +1-555-787-7678.

Thank you for your patience during the maintenance window.`

// SampleWorkflowDetails backs the workflow notification part of the demo.
func SampleWorkflowDetails() map[string]any {
	return map[string]any{
		"process":             "Monthly Report Generation",
		"completion_time":     "45 minutes",
		"reports_generated":   12,
		"data_sources":        4,
		"insights_created":    23,
		"recipients_notified": 15,
	}
}
