package journal

import "github.com/sirupsen/logrus"

// LogRecorder prints entries through logrus
type LogRecorder struct {
	log *logrus.Logger
}

func NewLogRecorder(log *logrus.Logger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Write(e Entry) error {
	fields := logrus.Fields{"account": e.Account, "kind": e.Kind}
	if e.Pass != "" {
		fields["pass"] = e.Pass
		fields["tick"] = e.Tick
	}
	entry := r.log.WithFields(fields).WithTime(e.Time)
	if e.Kind == KindError {
		entry.Warn(e.Message)
		return nil
	}
	entry.Info(e.Message)
	return nil
}
