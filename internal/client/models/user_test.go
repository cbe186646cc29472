package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *User {
	return &User{ID: 7, Email: "j@x.com", Username: "jdoe", FirstName: "J", LastName: "D", Token: "tok"}
}

func TestUser_Valid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *User)
		want   bool
	}{
		{name: "complete", mutate: func(u *User) {}, want: true},
		{name: "zero id", mutate: func(u *User) { u.ID = 0 }, want: false},
		{name: "no email", mutate: func(u *User) { u.Email = "" }, want: false},
		{name: "no username", mutate: func(u *User) { u.Username = "" }, want: false},
		{name: "no first name", mutate: func(u *User) { u.FirstName = "" }, want: false},
		{name: "no last name", mutate: func(u *User) { u.LastName = "" }, want: false},
		{name: "no token", mutate: func(u *User) { u.Token = "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			assert.Equal(t, tt.want, u.Valid())
		})
	}

	var nilUser *User
	assert.False(t, nilUser.Valid())
}

func TestUser_PersistedShape(t *testing.T) {
	b, err := json.Marshal(validUser())
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":7,"email":"j@x.com","username":"jdoe","firstName":"J","lastName":"D","token":"tok"}`,
		string(b))
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := validUser()
	c := u.Clone()
	c.Token = "other"

	assert.Equal(t, "tok", u.Token)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}

func TestCloneSections_Independent(t *testing.T) {
	src := []LearningSection{{Title: "Languages", Data: []LearningItem{{ID: 1, Title: "Go", Category: "Languages"}}}}
	dst := CloneSections(src)
	dst[0].Data[0].Title = "Rust"

	assert.Equal(t, "Go", src[0].Data[0].Title)
	assert.Nil(t, CloneSections(nil))
}
