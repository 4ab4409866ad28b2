package tracker

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// TeamMember is a person on the project roster. Older exports store members
// as bare email strings; both shapes decode to the same struct.
type TeamMember struct {
	Email       string `json:"email" yaml:"email"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
}

func (m *TeamMember) UnmarshalJSON(data []byte) error {
	var email string
	if err := json.Unmarshal(data, &email); err == nil {
		*m = TeamMember{Email: email}
		return nil
	}
	type plain TeamMember
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = TeamMember(p)
	return nil
}

func (m *TeamMember) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*m = TeamMember{Email: node.Value}
		return nil
	}
	type plain TeamMember
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*m = TeamMember(p)
	return nil
}

// Project is the container entity: name plus declared roster.
type Project struct {
	ID          EntityID     `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	TeamMembers []TeamMember `json:"team_members,omitempty" yaml:"team_members,omitempty"`
}

// Roster returns the project's declared members plus any user appearing as
// a task assignee but absent from the declaration, so ad-hoc contributors
// stay visible in capacity reporting. Declared members keep their declared
// order; ad-hoc contributors follow, sorted by email.
func Roster(project Project, tasks []Task) []TeamMember {
	seen := make(map[string]bool, len(project.TeamMembers))
	roster := make([]TeamMember, 0, len(project.TeamMembers))
	for _, m := range project.TeamMembers {
		if m.Email == "" || seen[m.Email] {
			continue
		}
		seen[m.Email] = true
		roster = append(roster, m)
	}

	var adhoc []string
	for _, t := range tasks {
		for _, email := range t.AssignedTo {
			if !seen[email] {
				seen[email] = true
				adhoc = append(adhoc, email)
			}
		}
	}
	sort.Strings(adhoc)
	for _, email := range adhoc {
		roster = append(roster, TeamMember{Email: email})
	}
	return roster
}
