//go:build unit

package graph_test

import (
	"context"
	"encoding/json"
	"testing"

	"club-booking/internal/handler/graph"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
	"club-booking/tests/common/builder"
	usecasemock "club-booking/tests/mock/usecase"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// exec decodes vars from JSON first, as the HTTP transport does.
func exec(t *testing.T, schema *graphql.Schema, query string, vars map[string]any) *graphql.Response {
	t.Helper()
	var decoded map[string]any
	if vars != nil {
		raw, err := json.Marshal(vars)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return schema.Exec(context.Background(), query, "", decoded)
}

func errorCode(t *testing.T, resp *graphql.Response) string {
	t.Helper()
	require.Len(t, resp.Errors, 1)
	code, _ := resp.Errors[0].Extensions["code"].(string)
	return code
}

func TestRegistrySchema_CheckMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecasemock.NewMockMembershipService(ctrl)
	schema := graph.NewRegistrySchema(graph.NewRegistryResolver(svc))
	b := builder.NewMemberBuilder()

	svc.EXPECT().CheckMember(gomock.Any(), b.ID).Return(b.BuildView(), nil)

	resp := exec(t, schema, `query($id: String!) { checkMember(id: $id) { id name surname registrationDate } }`,
		map[string]any{"id": b.ID})

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"checkMember":{"id":"`+b.ID+`","name":"Mario","surname":"Rossi","registrationDate":"2026-06-01"}}`, string(resp.Data))
}

func TestRegistrySchema_CheckMember_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecasemock.NewMockMembershipService(ctrl)
	schema := graph.NewRegistrySchema(graph.NewRegistryResolver(svc))

	svc.EXPECT().CheckMember(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("member not found"), errs.ErrNotFound))

	resp := exec(t, schema, `{ checkMember(id: "CF0000000000001A") { id } }`, nil)

	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
	assert.Equal(t, "Not found", resp.Errors[0].Message)
}

func TestRegistrySchema_AllMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecasemock.NewMockMembershipService(ctrl)
	schema := graph.NewRegistrySchema(graph.NewRegistryResolver(svc))

	svc.EXPECT().ListMembers(gomock.Any()).Return([]*queries.MemberView{
		builder.NewMemberBuilder().BuildView(),
		builder.NewMemberBuilder().WithID("ZZ0000000000009Z").BuildView(),
	}, nil)

	resp := exec(t, schema, `{ allMembers { id } }`, nil)

	require.Empty(t, resp.Errors)
	var data struct {
		AllMembers []struct{ ID string } `json:"allMembers"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.AllMembers, 2)
	assert.Equal(t, "ZZ0000000000009Z", data.AllMembers[1].ID)
}

func TestRegistrySchema_AddMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecasemock.NewMockMembershipService(ctrl)
	schema := graph.NewRegistrySchema(graph.NewRegistryResolver(svc))
	b := builder.NewMemberBuilder()
	m, err := b.BuildDomain()
	require.NoError(t, err)

	svc.EXPECT().RegisterMember(gomock.Any(), b.BuildCommand()).Return(m, nil)
	svc.EXPECT().RegisterMember(gomock.Any(), b.BuildCommand()).
		Return(nil, errs.Mark(errs.New("dup"), errs.ErrAlreadyExists))

	query := `mutation($m: MemberInput!) { addMember(member: $m) { detail warning } }`
	vars := map[string]any{"m": map[string]any{"id": b.ID, "name": b.Name, "surname": b.Surname}}

	resp := exec(t, schema, query, vars)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"addMember":{"detail":"member `+b.ID+` added","warning":null}}`, string(resp.Data))

	resp = exec(t, schema, query, vars)
	assert.Equal(t, "ALREADY_EXISTS", errorCode(t, resp))
}

func TestRegistrySchema_DeleteMember_Warning(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := usecasemock.NewMockMembershipService(ctrl)
	schema := graph.NewRegistrySchema(graph.NewRegistryResolver(svc))
	code := builder.NewMemberBuilder().BuildCode()

	svc.EXPECT().RemoveMember(gomock.Any(), code.String()).
		Return(&commands.RemoveMemberResult{ID: code, Warning: commands.CascadeWarning}, nil)

	resp := exec(t, schema, `mutation { deleteMember(id: "`+code.String()+`") { detail warning } }`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"deleteMember":{"detail":"member `+code.String()+` deleted","warning":"`+commands.CascadeWarning+`"}}`, string(resp.Data))
}
