package entity

// MemberEntity is a team participant together with the tasks they own. The
// member id is canonical; the name is only assumed unique for display lookup.
type MemberEntity struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Status MemberStatus  `json:"status"`
	Avatar string        `json:"avatar"`
	Tasks  []*TaskEntity `json:"tasks"`
}

// Clone deep-copies the member and every owned task so snapshots handed to
// the analytics engine cannot alias live store state.
func (m *MemberEntity) Clone() *MemberEntity {
	out := &MemberEntity{
		ID:     m.ID,
		Name:   m.Name,
		Status: m.Status,
		Avatar: m.Avatar,
	}
	if m.Tasks != nil {
		out.Tasks = make([]*TaskEntity, 0, len(m.Tasks))
		for _, t := range m.Tasks {
			out.Tasks = append(out.Tasks, t.Clone())
		}
	}
	return out
}

type MemberStatus string

const (
	StatusWorking MemberStatus = "Working"
	StatusBreak   MemberStatus = "Break"
	StatusMeeting MemberStatus = "Meeting"
	StatusOffline MemberStatus = "Offline"
)

func (s MemberStatus) IsValid() bool {
	switch s {
	case StatusWorking, StatusBreak, StatusMeeting, StatusOffline:
		return true
	}

	return false
}
