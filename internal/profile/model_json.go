package profile

import "encoding/json"

// Submissions may omit "visible"; every node type defaults it to true.

// UnmarshalJSON decodes a Section with Visible defaulting to true.
func (s *Section) UnmarshalJSON(b []byte) error {
	type alias Section
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = Section(a)
	return nil
}

// UnmarshalJSON decodes a KeyRole with Visible defaulting to true.
func (k *KeyRole) UnmarshalJSON(b []byte) error {
	type alias KeyRole
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*k = KeyRole(a)
	return nil
}

// UnmarshalJSON decodes a SkillCategory with Visible defaulting to true.
func (c *SkillCategory) UnmarshalJSON(b []byte) error {
	type alias SkillCategory
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*c = SkillCategory(a)
	return nil
}

// UnmarshalJSON decodes a Skill with Visible defaulting to true.
func (s *Skill) UnmarshalJSON(b []byte) error {
	type alias Skill
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = Skill(a)
	return nil
}

// UnmarshalJSON decodes a Company with Visible defaulting to true.
func (c *Company) UnmarshalJSON(b []byte) error {
	type alias Company
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*c = Company(a)
	return nil
}

// UnmarshalJSON decodes a Project with Visible defaulting to true.
func (p *Project) UnmarshalJSON(b []byte) error {
	type alias Project
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = Project(a)
	return nil
}

// UnmarshalJSON decodes a MetaItem with Visible defaulting to true.
func (m *MetaItem) UnmarshalJSON(b []byte) error {
	type alias MetaItem
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*m = MetaItem(a)
	return nil
}

// UnmarshalJSON decodes a TechStack with Visible defaulting to true.
func (t *TechStack) UnmarshalJSON(b []byte) error {
	type alias TechStack
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*t = TechStack(a)
	return nil
}

// UnmarshalJSON decodes a Problem with Visible defaulting to true.
func (p *Problem) UnmarshalJSON(b []byte) error {
	type alias Problem
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = Problem(a)
	return nil
}

// UnmarshalJSON decodes a Solution with Visible defaulting to true.
func (s *Solution) UnmarshalJSON(b []byte) error {
	type alias Solution
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = Solution(a)
	return nil
}

// UnmarshalJSON decodes an Impact with Visible defaulting to true.
func (i *Impact) UnmarshalJSON(b []byte) error {
	type alias Impact
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*i = Impact(a)
	return nil
}

// UnmarshalJSON decodes an Education with Visible defaulting to true.
func (e *Education) UnmarshalJSON(b []byte) error {
	type alias Education
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*e = Education(a)
	return nil
}

// UnmarshalJSON decodes a Certification with Visible defaulting to true.
func (c *Certification) UnmarshalJSON(b []byte) error {
	type alias Certification
	a := alias{Visible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*c = Certification(a)
	return nil
}
