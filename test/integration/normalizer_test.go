package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procnorm/internal/config"
	"procnorm/internal/logger"
	"procnorm/internal/normalizer"
	"procnorm/internal/stream"
)

// normalizeFixture streams a fixture through the named transform and returns the
// decoded output lines.
func normalizeFixture(t *testing.T, fixture, transformName, extraData string) ([]map[string]any, stream.Stats) {
	t.Helper()

	file, err := os.Open(filepath.Join("..", "fixtures", fixture))
	require.NoError(t, err)
	defer file.Close()

	cfg := config.Default()
	cfg.Transform = transformName
	cfg.ExtraData = extraData

	opts, err := cfg.Options()
	require.NoError(t, err)

	proc := normalizer.NewProcessor(transformName, normalizer.DefaultRegistry(), opts)

	var out bytes.Buffer

	stats, err := stream.Run(context.Background(), file, &out, proc, logger.Nop())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out.String(), "\n"), "output must end with a newline")

	var records []map[string]any

	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if line == "" {
			continue
		}

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record), "line %q", line)
		records = append(records, record)
	}

	require.Len(t, records, stats.Emitted)

	return records, stats
}

func TestOpenTender_Contracts(t *testing.T) {
	records, stats := normalizeFixture(t, "opentender_releases.json", "opentender-contracts", "")

	assert.Equal(t, stream.Stats{Read: 2, Emitted: 2, Dropped: 1}, stats)
	require.Len(t, records, 2)

	first, second := records[0], records[1]

	assert.Equal(t, "HU_T-77-A1", first["id"])
	assert.Equal(t, "HU_T-77-2", second["id"])
	assert.Equal(t, "HU", first["country"])
	assert.Equal(t, "Utkarbantartas", first["title"])
	assert.Equal(t, "2020-03-01T09:30:00.000Z", first["publish_date"])
	assert.Equal(t, "2020-04-01T00:00:00.000Z", first["award_date"])
	assert.Equal(t, 125000.5, first["amount"])
	assert.Equal(t, "HUF", first["currency"])
	assert.Equal(t, "https://tender.example.org/T-77", first["url"])
	assert.Equal(t, "opentender", first["source"])

	assert.NotContains(t, second, "amount")
	assert.Nil(t, second["contract_date"])

	firstSupplier := first["supplier"].(map[string]any)
	secondSupplier := second["supplier"].(map[string]any)
	assert.Equal(t, "HU", firstSupplier["country"])
	assert.Equal(t, "AT", secondSupplier["country"])
}

func TestOpenTender_IDsLinkAcrossTransforms(t *testing.T) {
	contracts, _ := normalizeFixture(t, "opentender_releases.json", "opentender-contracts", "")
	buyers, _ := normalizeFixture(t, "opentender_releases.json", "opentender-buyers", "")
	suppliers, _ := normalizeFixture(t, "opentender_releases.json", "opentender-suppliers", "")

	require.Len(t, buyers, 2)
	assert.Equal(t, "SK", buyers[1]["country"])

	buyerRef := contracts[0]["buyer"].(map[string]any)
	assert.Equal(t, buyers[0]["id"], buyerRef["id"])
	assert.Equal(t, "HU", buyers[0]["country"])

	supplierIDs := make([]any, 0, len(suppliers))
	for _, s := range suppliers {
		supplierIDs = append(supplierIDs, s["id"])
	}

	for _, c := range contracts {
		assert.Contains(t, supplierIDs, c["supplier"].(map[string]any)["id"])
	}
}

func TestPNT_ContractsFolder(t *testing.T) {
	records, stats := normalizeFixture(t, "pnt_contratos.json", "pnt", "folder=contratos|status=verified|anio=2021")

	assert.Equal(t, stream.Stats{Read: 3, Emitted: 2, Dropped: 1}, stats)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "PNT-1", first["id"])
	assert.Equal(t, "Secretaría de Salud", first["sujeto"])
	assert.Equal(t, "2021-04-15T00:00:00.000-06:00", first["date"])
	assert.Equal(t, "01/01/2021 - 31/03/2021", first["periodo"])
	assert.Equal(t, "Laboratorios del Norte", first["proveedor"])
	assert.Equal(t, 1234.5, first["monto"])
	assert.Equal(t, "2021-02-10T00:00:00.000-06:00", first["fecha_contrato"])
	assert.Equal(t, "verified", first["status"])
	assert.Equal(t, "contratos", first["folder"])
	assert.EqualValues(t, 2021, first["anio"])

	second := records[1]
	assert.Equal(t, "PNT-3", second["id"])
	assert.Equal(t, "Ana López Ruiz", second["proveedor"])
	assert.Equal(t, 0.0, second["monto"])
	assert.Contains(t, second, "fecha_contrato")
	assert.Nil(t, second["fecha_contrato"])
}

func TestPNT_Fallback(t *testing.T) {
	records, _ := normalizeFixture(t, "pnt_contratos.json", "pnt", "")
	require.Len(t, records, 2)

	assert.ElementsMatch(t, []string{"id", "sujeto", "date", "size"}, keysOf(records[0]))
	assert.Greater(t, records[0]["size"], 0.0)
}

func TestSIPOT_Flattening(t *testing.T) {
	records, stats := normalizeFixture(t, "sipot.json", "sipot", "folder=contratos")

	assert.Equal(t, stream.Stats{Read: 1, Emitted: 1}, stats)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "sipot-1", record["_id"])
	assert.Equal(t, "Municipio de Oaxaca", record["sujeto"])
	assert.NotContains(t, record, "informacion")
	assert.Equal(t, "2021", record["ejercicio"])
	assert.Equal(t, "2021-01-01T00:00:00.000-06:00", record["fecha_de_inicio_del_periodo_que_se_informa"])
	assert.Equal(t, 5000.0, record["monto_total_del_contrato"])
	assert.Contains(t, record, "fecha_de_termino")
	assert.Nil(t, record["fecha_de_termino"])
	assert.Equal(t, "contratos", record["folder"])

	rows := record["personas_beneficiarias"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]any{"nombre": "Juan", "monto": 10.0}, rows[0])
	assert.Equal(t, map[string]any{"nombre": "María", "monto": 20.0}, rows[1])
}

func TestGuatecompras_Proveedores(t *testing.T) {
	records, stats := normalizeFixture(t, "proveedores.json", "guatecompras-proveedores", "")

	assert.Equal(t, stream.Stats{Read: 3, Emitted: 2, Dropped: 1}, stats)
	require.Len(t, records, 2)

	person := records[0]
	assert.Equal(t, "juan-carlos-perez-lopez-gt", person["id"])
	assert.Equal(t, "JUAN CARLOS PEREZ LOPEZ", person["name"])
	assert.Equal(t, "GT", person["country"])
	assert.Equal(t, true, person["state_contractor"])
	assert.Equal(t, true, person["small_taxpayer"])
	assert.Equal(t, false, person["system_access"])
	assert.Contains(t, person["other_names"], "Ferretería El Martillo")
	assert.Equal(t, "JUAN CARLOS PEREZ LOPEZ", person["legal_representative"].(map[string]any)["name"])

	company := records[1]
	assert.Equal(t, "constructora-del-sur-sociedad-anonima-gt", company["id"])
	assert.Equal(t, "CONSTRUCTORA DEL SUR, SOCIEDAD ANONIMA", company["name"])
}

func TestUnknownTransform_Passthrough(t *testing.T) {
	records, stats := normalizeFixture(t, "sipot.json", "no-such-transform", "")

	assert.Equal(t, stream.Stats{Read: 1, Emitted: 1}, stats)
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "informacion")
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}
