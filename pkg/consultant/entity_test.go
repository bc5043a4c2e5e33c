package consultant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		c    Consultant
		want int
	}{
		{
			name: "fresh consultant",
			c: Consultant{
				ResumeStatus: ResumeNotUpdated,
				Attendance:   AttendanceNotCompleted,
				Training:     TrainingNotAssigned,
			},
			want: 0,
		},
		{
			name: "resume and attendance only",
			c: Consultant{
				ResumeStatus: ResumeUpdated,
				Attendance:   AttendanceCompleted,
				Training:     TrainingNotAssigned,
			},
			want: 50,
		},
		{
			name: "training in progress does not count",
			c: Consultant{
				ResumeStatus:  ResumeUpdated,
				Attendance:    AttendanceCompleted,
				Opportunities: 1,
				Training:      TrainingInProgress,
			},
			want: 75,
		},
		{
			name: "all milestones",
			c: Consultant{
				ResumeStatus:  ResumeUpdated,
				Attendance:    AttendanceCompleted,
				Opportunities: 3,
				Training:      TrainingCompleted,
			},
			want: 100,
		},
		{
			name: "training completed alone",
			c: Consultant{
				ResumeStatus: ResumeNotUpdated,
				Attendance:   AttendanceNotCompleted,
				Training:     TrainingCompleted,
			},
			want: 25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Progress())
		})
	}
}
