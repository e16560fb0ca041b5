package tables

import (
	"time"

	"github.com/google/uuid"
)

type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type User struct {
	tableName    struct{}  `bun:"table:users,alias:u"`
	Id           uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email        string    `json:"email" bun:"email,unique,notnull"`
	PasswordHash string    `json:"-" bun:"password_hash,notnull"`
	FirstName    string    `json:"first_name" bun:"first_name,notnull"`
	LastName     string    `json:"last_name" bun:"last_name,notnull"`
	Phone        string    `json:"phone,omitempty" bun:"phone"`
	Role         string    `json:"role" bun:"role,notnull,default:'customer'"`

	// Default shipping address, MX format
	Street     string `json:"street,omitempty" bun:"street"`
	ExteriorNo string `json:"exterior_no,omitempty" bun:"exterior_no"`
	Colonia    string `json:"colonia,omitempty" bun:"colonia"`
	City       string `json:"city,omitempty" bun:"city"`
	State      string `json:"state,omitempty" bun:"state"`
	PostalCode string `json:"postal_code,omitempty" bun:"postal_code"`

	IsActive  bool      `json:"is_active" bun:"is_active,notnull,default:true"`
	LastLogin time.Time `json:"last_login" bun:"last_login,default:now()"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt time.Time `json:"updated_at" bun:"updated_at,notnull,default:now()"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)
