package cloudstack

// InstanceGroup is an instance group as returned by the API. Optional
// attributes are empty when CloudStack omits them.
type InstanceGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Created   string `json:"created,omitempty"`
	Account   string `json:"account,omitempty"`
	Domain    string `json:"domain,omitempty"`
	DomainID  string `json:"domainid,omitempty"`
	Project   string `json:"project,omitempty"`
	ProjectID string `json:"projectid,omitempty"`
}

// Domain is a CloudStack domain. Path is the slash separated path from ROOT.
type Domain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Account is a CloudStack account.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Domain   string `json:"domain,omitempty"`
	DomainID string `json:"domainid,omitempty"`
}

// Project is a CloudStack project.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Account  string `json:"account,omitempty"`
	Domain   string `json:"domain,omitempty"`
	DomainID string `json:"domainid,omitempty"`
}
