package export

import (
	"fmt"
	"time"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Tổng quan"
	DetailSheet  = "Chi tiết"

	timeLayout = "15:04 02/01/2006"
)

var vietnamZone = time.FixedZone("ICT", 7*60*60)

// detailColumns precede one column per custom field name.
var detailColumns = []string{
	"STT", "Nguồn", "Họ tên", "Số điện thoại", "Email",
	"Mã check-in", "Trạng thái", "Thời gian check-in", "Thời gian đăng ký",
}

// Workbook renders event statistics as a two-sheet xlsx file.
type Workbook struct{}

func NewWorkbook() *Workbook {
	return &Workbook{}
}

func (Workbook) Render(stats *domain.EventStatistics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DetailSheet); err != nil {
		return nil, fmt.Errorf("create detail sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err = writeSummary(f, stats, bold); err != nil {
		return nil, err
	}
	if err = writeDetail(f, stats, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, stats *domain.EventStatistics, bold int) error {
	rows := [][]any{
		{"Sự kiện", stats.Event.Title},
		{"Địa điểm", stats.Event.Address},
		{"Bắt đầu", formatTime(&stats.Event.StartTime)},
		{"Kết thúc", formatTime(&stats.Event.EndTime)},
		{"Đã đăng ký", stats.Registered},
		{"Đã check-in", stats.CheckedIn},
		{"Chưa check-in", stats.NotCheckedIn},
		{"Đã hủy", stats.Cancelled},
		{"Tỷ lệ tham dự (%)", stats.AttendanceRate},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	last := fmt.Sprintf("A%d", len(rows))
	if err := f.SetCellStyle(SummarySheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}
	return f.SetColWidth(SummarySheet, "A", "B", 28)
}

func writeDetail(f *excelize.File, stats *domain.EventStatistics, bold int) error {
	header := make([]any, 0, len(detailColumns)+len(stats.FieldNames))
	for _, c := range detailColumns {
		header = append(header, c)
	}
	for _, name := range stats.FieldNames {
		header = append(header, name)
	}
	if err := f.SetSheetRow(DetailSheet, "A1", &header); err != nil {
		return fmt.Errorf("write detail header: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(DetailSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style detail header: %w", err)
	}

	for i, p := range stats.Participants {
		row := []any{
			i + 1,
			sourceLabel(p.Source),
			p.Name,
			p.Phone,
			p.Email,
			p.CheckInCode,
			participantStatus(p),
			formatTime(p.CheckInTime),
			formatTime(&p.RegisteredAt),
		}
		for _, name := range stats.FieldNames {
			row = append(row, p.CustomFields[name])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(DetailSheet, cell, &row); err != nil {
			return fmt.Errorf("write detail row: %w", err)
		}
	}

	return f.SetColWidth(DetailSheet, "A", lastCol, 20)
}

func sourceLabel(s domain.ParticipantSource) string {
	if s == domain.SourceGuest {
		return "Khách mời"
	}
	return "Đăng ký"
}

func participantStatus(p *domain.Participant) string {
	switch {
	case p.Cancelled:
		return "Đã hủy"
	case p.CheckedIn:
		return "Đã check-in"
	default:
		return "Chưa check-in"
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(vietnamZone).Format(timeLayout)
}
