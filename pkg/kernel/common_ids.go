package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type RecruiterID string

func NewRecruiterID(id string) RecruiterID { return RecruiterID(id) }
func (r RecruiterID) String() string       { return string(r) }
func (r RecruiterID) IsEmpty() bool        { return string(r) == "" }

type InstituteID string

func NewInstituteID(id string) InstituteID { return InstituteID(id) }
func (i InstituteID) String() string       { return string(i) }
func (i InstituteID) IsEmpty() bool        { return string(i) == "" }

type StudentID string

func NewStudentID(id string) StudentID { return StudentID(id) }
func (s StudentID) String() string     { return string(s) }
func (s StudentID) IsEmpty() bool      { return string(s) == "" }
