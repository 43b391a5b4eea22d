// Package batch checks recorded form submissions in bulk.
//
// Submissions are read from a YAML or JSON document (see File), checked in
// order with the form registry and summarised in a Report. The report can
// be printed through any feedback.Alerter, one titled block per invalid
// submission:
//
//	f, err := batch.Load("submissions.yaml")
//	if err != nil {
//		return err
//	}
//	report, err := batch.NewRunner().Run(ctx, f)
//	if err != nil {
//		return err
//	}
//	report.Alert(ctx, feedback.NewWriterAlerter(os.Stdout))
//
// Every submission in a run sees the same clock reading, so appointment
// dates are judged consistently across the file.
package batch
