package model

// Computer is one row of the computer inventory as returned by the backend
type Computer struct {
	UUIDLabel              Field `json:"uuid_label"`
	HostName               Field `json:"host_name"`
	MACAddress             Field `json:"mac_address"`
	IPv4Address            Field `json:"ipv4_address"`
	Network                Field `json:"network"`
	OS                     Field `json:"os"`
	NetworkAdapter         Field `json:"network_adapter"`
	SecSeal                Field `json:"secseal"`
	Make                   Field `json:"make"`
	Model                  Field `json:"model"`
	PCSerialNumber         Field `json:"pc_serialnumber"`
	NetAdapterSerialNumber Field `json:"net_adapter_serialnumber"`
	UserName               Field `json:"user_name"`
	YAT                    Field `json:"yat"`
	OfficeNumber           Field `json:"office_number"`
	Telephone              Field `json:"telephone"`
	OfficeLocation         Field `json:"office_location"`
}

// Entry is one line of a computer's job history
type Entry struct {
	UUID      Field `json:"uuid"`
	CreatedBy Field `json:"created_by"`
	CreatedAt Field `json:"created_at"`
	Reason    Field `json:"reason"`
	Status    Field `json:"status"`
	SignedBy  Field `json:"signed_by"`
	SignedAt  Field `json:"signed_at"`
}

// EntryHistory is the history block of the computer-by-label endpoint
type EntryHistory struct {
	Count   int     `json:"count"`
	History []Entry `json:"history"`
}

// ComputerDetail is the result of GET /api/v1/computers/label/{label}
type ComputerDetail struct {
	Computer Computer     `json:"computer"`
	Entries  EntryHistory `json:"entries"`
}

// ComputerList is the result of the computer list and search endpoints
type ComputerList struct {
	Count     int        `json:"count"`
	Computers []Computer `json:"computers"`
}
