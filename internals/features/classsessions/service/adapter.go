// file: internals/features/classsessions/service/adapter.go
package service

import (
	"encoding/json"
	"strings"

	"github.com/bytedance/sonic"

	"tutorku_backend/internals/features/classsessions/dto"
	helper "tutorku_backend/internals/helpers"
)

// Bentuk mentah sesi dari upstream; seperti transaksi, satu field logis bisa
// datang lewat beberapa jalur (API lama berbahasa Indonesia, yang baru
// berbahasa Inggris).
type rawClassSession struct {
	EnrollmentID  helper.FlexString `json:"enrollment_id"`
	PendaftaranID helper.FlexString `json:"pendaftaran_id"`
	Enrollment    *rawRefID         `json:"enrollment"`

	ID        helper.FlexString `json:"id"`
	SessionID helper.FlexString `json:"session_id"`

	SessionIndex helper.FlexFloat `json:"session_index"`
	PertemuanKe  helper.FlexFloat `json:"pertemuan_ke"`

	TotalSessions  helper.FlexFloat `json:"total_sessions"`
	TotalPertemuan helper.FlexFloat `json:"total_pertemuan"`

	Date    helper.FlexString `json:"date"`
	Tanggal helper.FlexString `json:"tanggal"`

	StartTime helper.FlexString `json:"start_time"`
	JamMulai  helper.FlexString `json:"jam_mulai"`

	EndTime    helper.FlexString `json:"end_time"`
	JamSelesai helper.FlexString `json:"jam_selesai"`

	Status helper.FlexString `json:"status"`

	Rating helper.FlexFloat `json:"rating"`
	Nilai  helper.FlexFloat `json:"nilai"`

	Teacher     *rawRef           `json:"teacher"`
	Pengajar    *rawRef           `json:"pengajar"`
	TeacherName helper.FlexString `json:"teacher_name"`

	Instrument     *rawRef           `json:"instrument"`
	Instrumen      *rawRef           `json:"instrumen"`
	InstrumentName helper.FlexString `json:"instrument_name"`

	Program     *rawRef           `json:"program"`
	Paket       *rawRef           `json:"paket"`
	ProgramName helper.FlexString `json:"program_name"`

	Schedule helper.FlexString `json:"schedule"`
	Jadwal   helper.FlexString `json:"jadwal"`
}

type rawRef struct {
	Name helper.FlexString `json:"name"`
	Nama helper.FlexString `json:"nama"`
}

func (r *rawRef) value() string {
	if r == nil {
		return ""
	}
	return pick(r.Name.Value, r.Nama.Value)
}

type rawRefID struct {
	ID helper.FlexString `json:"id"`
}

func (r *rawRefID) value() string {
	if r == nil {
		return ""
	}
	return r.ID.Value
}

// AdaptClassSession menormalkan satu sesi mentah. Precedence per atribut
// stabil:
//
//	enrollment: enrollment_id → pendaftaran_id → enrollment.id
//	session id: id → session_id
//	index:      session_index → pertemuan_ke → 0
//	total:      total_sessions → total_pertemuan → 0
//	date/time:  date→tanggal, start_time→jam_mulai, end_time→jam_selesai
//	rating:     rating → nilai → nil
//	teacher:    teacher.name → pengajar.nama → teacher_name
//	instrument: instrument.name → instrumen.nama → instrument_name
//	program:    program.name → paket.nama → program_name
//	schedule:   schedule → jadwal
func AdaptClassSession(raw json.RawMessage) dto.ClassSessionResponse {
	var r rawClassSession
	_ = sonic.Unmarshal(raw, &r)

	rating := r.Rating.Value
	if rating == nil {
		rating = r.Nilai.Value
	}

	return dto.ClassSessionResponse{
		EnrollmentID:   pick(r.EnrollmentID.Value, r.PendaftaranID.Value, r.Enrollment.value()),
		SessionID:      pick(r.ID.Value, r.SessionID.Value),
		SessionIndex:   firstInt(r.SessionIndex, r.PertemuanKe),
		TotalSessions:  firstInt(r.TotalSessions, r.TotalPertemuan),
		Date:           pick(r.Date.Value, r.Tanggal.Value),
		StartTime:      pick(r.StartTime.Value, r.JamMulai.Value),
		EndTime:        pick(r.EndTime.Value, r.JamSelesai.Value),
		Status:         r.Status.Value,
		Rating:         rating,
		TeacherName:    pick(r.Teacher.value(), r.Pengajar.value(), r.TeacherName.Value),
		InstrumentName: pick(r.Instrument.value(), r.Instrumen.value(), r.InstrumentName.Value),
		ProgramName:    pick(r.Program.value(), r.Paket.value(), r.ProgramName.Value),
		ScheduleText:   pick(r.Schedule.Value, r.Jadwal.Value),
	}
}

func pick(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

func firstInt(candidates ...helper.FlexFloat) int {
	for _, c := range candidates {
		if c.Value != nil {
			return int(*c.Value)
		}
	}
	return 0
}
