// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Human is the single resource managed by the service.
//
// ID is assigned by the storage layer on creation and never changes
// afterwards. Name, Age and Sex are always populated for a persisted record.
type Human struct {
	// ID is the storage-assigned unique identifier.
	ID int64 `json:"id"`

	// Name is the non-empty display name.
	Name string `json:"name"`

	// Age is an integer age. No range is enforced.
	Age int `json:"age"`

	// Sex is a short text token (e.g. "F", "M").
	Sex string `json:"sex"`
}

// HumanInput is the request body accepted by the create and update
// operations.
//
// Fields are pointers so that a missing field can be told apart from its
// zero value: `"age": 0` is a valid age, an absent age is not.
type HumanInput struct {
	Name *string `json:"name" validate:"required,min=1"`
	Age  *int    `json:"age" validate:"required"`
	Sex  *string `json:"sex" validate:"required,min=1,max=32"`
}

// ToHuman converts a validated input into a [Human] with the given id.
// Nil fields are left at their zero values, so callers must validate first.
func (in HumanInput) ToHuman(id int64) Human {
	human := Human{ID: id}
	if in.Name != nil {
		human.Name = *in.Name
	}
	if in.Age != nil {
		human.Age = *in.Age
	}
	if in.Sex != nil {
		human.Sex = *in.Sex
	}

	return human
}

// NewHumanInput builds a fully populated [HumanInput] from plain values.
func NewHumanInput(name string, age int, sex string) HumanInput {
	return HumanInput{Name: &name, Age: &age, Sex: &sex}
}
