package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook_Render(t *testing.T) {
	checkIn := time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC)
	stats := &domain.EventStatistics{
		Event: &domain.Event{
			Title:     "Hội thảo",
			Address:   "Hà Nội",
			StartTime: time.Date(2026, 3, 1, 1, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC),
		},
		FieldNames: []string{"Đơn vị"},
		Participants: []*domain.Participant{
			{
				Source: domain.SourceRegistration, Name: "An", Phone: "0901234567",
				CheckInCode: "ABCD2345", CheckedIn: true, CheckInTime: &checkIn,
				RegisteredAt: time.Date(2026, 2, 1, 3, 0, 0, 0, time.UTC),
				CustomFields: map[string]string{"Đơn vị": "BKA"},
			},
			{
				Source: domain.SourceGuest, Name: "Bình", Phone: "0912345678",
				Cancelled:    true,
				RegisteredAt: time.Date(2026, 2, 2, 3, 0, 0, 0, time.UTC),
			},
		},
		Registered:     2,
		CheckedIn:      1,
		NotCheckedIn:   1,
		Cancelled:      1,
		AttendanceRate: 50,
	}

	data, err := NewWorkbook().Render(stats)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, DetailSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 9)
	assert.Equal(t, []string{"Sự kiện", "Hội thảo"}, summary[0])
	assert.Equal(t, []string{"Bắt đầu", "08:30 01/03/2026"}, summary[2])
	assert.Equal(t, []string{"Đã đăng ký", "2"}, summary[4])
	assert.Equal(t, []string{"Tỷ lệ tham dự (%)", "50"}, summary[8])

	detail, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	require.Len(t, detail, 3)
	assert.Equal(t, append(append([]string{}, detailColumns...), "Đơn vị"), detail[0])
	assert.Equal(t, []string{
		"1", "Đăng ký", "An", "0901234567", "", "ABCD2345", "Đã check-in",
		"09:00 01/03/2026", "10:00 01/02/2026", "BKA",
	}, detail[1])
	assert.Equal(t, "Khách mời", detail[2][1])
	assert.Equal(t, "Đã hủy", detail[2][6])
}

func TestWorkbook_Render_NoParticipants(t *testing.T) {
	data, err := NewWorkbook().Render(&domain.EventStatistics{Event: &domain.Event{Title: "Trống"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	detail, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	assert.Len(t, detail, 1)
}
