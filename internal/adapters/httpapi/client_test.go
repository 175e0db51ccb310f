// internal/adapters/httpapi/client_test.go
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpway/helpway-core/internal/domain"
)

func newTestClient(t *testing.T, router *mux.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	cl := NewClient(srv.URL, 5*time.Second)
	cl.newKey = func() string { return "key-1" }
	return cl
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
	return m
}

func TestClient_Login(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/usuario/login", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if body["email"] == "ana@example.com" && body["senha"] == "segredo" {
			writeJSON(w, http.StatusOK, `{"id": 7, "nome": "Ana", "email": "ana@example.com", "tp_usuario": 1}`)
			return
		}
		writeJSON(w, http.StatusUnauthorized, `{}`)
	}).Methods(http.MethodPost)
	cl := newTestClient(t, router)

	user, err := cl.Login(context.Background(), "ana@example.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, domain.RoleDonor, user.Role)

	_, err = cl.Login(context.Background(), "ana@example.com", "errada")
	var aerr *domain.APIError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, http.StatusUnauthorized, aerr.StatusCode)
	assert.Equal(t, "Email ou senha incorretos", aerr.Message)
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/usuario", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"message": "Email já cadastrado"}`)
	}).Methods(http.MethodPost)
	router.HandleFunc("/usuario/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `not json`)
	}).Methods(http.MethodPatch)
	cl := newTestClient(t, router)

	_, err := cl.CreateUser(context.Background(), domain.NewUser{Email: "ana@example.com"})
	assert.EqualError(t, err, "Email já cadastrado")

	err = cl.UpdateUser(context.Background(), "7", domain.UserUpdate{CurrentPassword: "x"})
	assert.EqualError(t, err, "Erro ao atualizar usuário")
}

func TestClient_ListCampaigns(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/campanha", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id": 1, "titulo": "Ajude o RS", "subtitulo": "Defesa Civil", "valor_levantado": "3000.00", "meta_doacoes": 10000,
			 "fg_dinheiro": true, "fg_alimentacao": 1, "fg_vestuario": false,
			 "localizacao": {"latitude": -30.0346, "longitude": -51.2177}, "chave_pix": "rs@pix", "id_organizador": 3},
			{"id": "2", "titulo": "Ajuda Médica", "valor_levantado": null, "meta_doacoes": null, "localizacao": null, "chave_pix": null}
		]`)
	}).Methods(http.MethodGet)
	cl := newTestClient(t, router)

	campaigns, err := cl.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	first := campaigns[0]
	assert.Equal(t, "1", first.ID)
	require.NotNil(t, first.Raised)
	assert.Equal(t, 3000.0, *first.Raised)
	assert.Equal(t, 10000.0, *first.Goal)
	assert.Equal(t, []domain.DonationType{domain.DonationMoney, domain.DonationFood}, first.Tags())
	require.NotNil(t, first.Location)
	assert.Equal(t, -30.0346, first.Location.Latitude)
	assert.Equal(t, "rs@pix", first.PixKey)
	assert.Equal(t, "3", first.OrganizerID)

	second := campaigns[1]
	assert.Nil(t, second.Raised)
	assert.Nil(t, second.Goal)
	assert.Nil(t, second.Location)
	assert.Empty(t, second.PixKey)
}

func TestClient_MalformedResponses(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/campanha", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id": 1}]`)
	}).Methods(http.MethodGet)
	router.HandleFunc("/campanha/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": 1, "titulo": "x", "meta_doacoes": "muito"}`)
	}).Methods(http.MethodGet)
	router.HandleFunc("/usuario/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ``)
	}).Methods(http.MethodGet)
	cl := newTestClient(t, router)

	_, err := cl.ListCampaigns(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	_, err = cl.GetCampaign(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	_, err = cl.GetUser(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cl := NewClient(url, time.Second)
	_, err := cl.ListCampaigns(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_CreateCampaign(t *testing.T) {
	var got map[string]interface{}
	router := mux.NewRouter()
	router.HandleFunc("/campanha", func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody(t, r)
		writeJSON(w, http.StatusCreated, `{"id": 9, "titulo": "Sopão"}`)
	}).Methods(http.MethodPost)
	cl := newTestClient(t, router)

	c, err := cl.CreateCampaign(context.Background(), domain.CampaignDraft{
		Title:       "Sopão",
		Subtitle:    "Paróquia",
		Description: "Sopa para todos",
		Goal:        500,
		Types:       []domain.DonationType{domain.DonationFood},
		PixKey:      "ignored",
		Location:    &domain.Coordinate{Latitude: -23.5, Longitude: -46.6},
		OrganizerID: "3",
	})
	require.NoError(t, err)
	assert.Equal(t, "9", c.ID)

	assert.Equal(t, "Sopão", got["titulo"])
	assert.Equal(t, 500.0, got["meta_doacoes"])
	assert.Equal(t, false, got["fg_dinheiro"])
	assert.Equal(t, true, got["fg_alimentacao"])
	assert.Nil(t, got["chave_pix"], "pix key must be null when money is not accepted")
	assert.Contains(t, got, "chave_pix")
	assert.Equal(t, 3.0, got["id_organizador"], "numeric ids are sent as numbers")
	loc, ok := got["localizacao"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, -23.5, loc["latitude"])
}

func TestClient_UpdateCampaignOmitsUnchangedImage(t *testing.T) {
	var got map[string]interface{}
	router := mux.NewRouter()
	router.HandleFunc("/campanha/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", mux.Vars(r)["id"])
		got = decodeBody(t, r)
		writeJSON(w, http.StatusOK, `{"id": 4, "titulo": "Novo"}`)
	}).Methods(http.MethodPatch)
	cl := newTestClient(t, router)

	_, err := cl.UpdateCampaign(context.Background(), "4", domain.CampaignUpdate{
		Title:  "Novo",
		Types:  []domain.DonationType{domain.DonationMoney},
		PixKey: "pix@novo",
	})
	require.NoError(t, err)
	assert.NotContains(t, got, "imagem_base64")
	assert.Equal(t, "pix@novo", got["chave_pix"])
}

func TestClient_DonationHistory(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/usuario/{id}/doacoes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id": 1, "titulo_campanha": "Ajude o RS", "nome_organizador": "Defesa Civil", "valor": "25.50", "date": "2024-05-10T12:00:00Z"}]`)
	}).Methods(http.MethodGet)
	router.HandleFunc("/usuario/{id}/doacoes-recebidas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `null`)
	}).Methods(http.MethodGet)
	router.HandleFunc("/campanha/{id}/doacoes-recebidas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, ``)
	}).Methods(http.MethodGet)
	cl := newTestClient(t, router)

	made, err := cl.ListDonationsMade(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, made, 1)
	assert.Equal(t, domain.PerspectiveMade, made[0].Perspective)
	assert.Equal(t, 25.5, made[0].Amount)
	assert.Equal(t, "Ajude o RS Defesa Civil", made[0].SearchName())

	received, err := cl.ListDonationsReceived(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, received)

	_, err = cl.ListCampaignDonations(context.Background(), "1")
	assert.EqualError(t, err, "Erro ao buscar doações desta campanha")
}

func TestClient_RegisterDonation(t *testing.T) {
	var got map[string]interface{}
	var key string
	router := mux.NewRouter()
	router.HandleFunc("/doacao", func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("Idempotency-Key")
		got = decodeBody(t, r)
		writeJSON(w, http.StatusCreated, `{"id": 55, "valor": 30, "date": "2024-06-01"}`)
	}).Methods(http.MethodPost)
	cl := newTestClient(t, router)

	rec, err := cl.RegisterDonation(context.Background(), domain.DonationRequest{CampaignID: "1", DonorID: "7", Amount: 30})
	require.NoError(t, err)
	assert.Equal(t, "55", rec.ID)
	assert.Equal(t, 30.0, rec.Amount)
	assert.Equal(t, "key-1", key)
	assert.Equal(t, 1.0, got["id_campanha"])
	assert.Equal(t, 7.0, got["id_doador"])
	assert.Equal(t, true, got["fg_dinheiro"])
	assert.Equal(t, false, got["fg_alimentacao"])
	assert.Equal(t, false, got["fg_vestuario"])
}

func TestClient_UpdateCampaignLocation(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/campanha/{id}/localizacao", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		if body["latitude"] == 0.0 {
			writeJSON(w, http.StatusBadRequest, `{"message": "Localização inválida"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	}).Methods(http.MethodPatch)
	cl := newTestClient(t, router)

	require.NoError(t, cl.UpdateCampaignLocation(context.Background(), "1", domain.Coordinate{Latitude: -23.5, Longitude: -46.6}))
	assert.EqualError(t, cl.UpdateCampaignLocation(context.Background(), "1", domain.Coordinate{}), "Localização inválida")
}
