package domain

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Environment types for provisioning applications
const (
	EnvTypeIaaS = "iaas"
	EnvTypePaaS = "paas"
)
