package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (r JobID) String() string { return string(r) }
func (r JobID) IsEmpty() bool  { return string(r) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type HiringRecordID string

func NewHiringRecordID(id string) HiringRecordID { return HiringRecordID(id) }
func (h HiringRecordID) String() string          { return string(h) }
func (h HiringRecordID) IsEmpty() bool           { return string(h) == "" }
