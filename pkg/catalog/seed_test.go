package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSeed = `
chains:
  - id: 9d1f4a5e-1b1c-4c53-9b0e-3c1f2e5a7a01
    chain_id: "1"
    name: Ethereum
  - chain_id: "137"
    name: Polygon
tokens:
  - id: 3a0c7c6f-5d0b-4f3e-8d9a-2b1e6f7a8c01
    chain: "1"
    address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
    symbol: USDC
    decimals: 6
nft_collections:
  - id: 5e8f1a2b-3c4d-4e5f-8a9b-0c1d2e3f4a01
    chain: "137"
    address: "0x1111111111111111111111111111111111111111"
    name: Punks
`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(sampleSeed))
	if err != nil {
		t.Fatalf("ParseSeed() failed: %v", err)
	}
	if len(seed.Chains) != 2 || len(seed.Tokens) != 1 || len(seed.NFTs) != 1 {
		t.Fatalf("unexpected seed sizes: %d chains, %d tokens, %d nfts", len(seed.Chains), len(seed.Tokens), len(seed.NFTs))
	}
	if seed.Tokens[0].Decimals != 6 {
		t.Fatalf("expected 6 decimals, got %d", seed.Tokens[0].Decimals)
	}
	if seed.Chains[1].ID.String() != "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("omitted chain id should stay zero until upsert, got %s", seed.Chains[1].ID)
	}
}

func TestParseSeed_UnknownChain(t *testing.T) {
	raw := strings.Replace(sampleSeed, `chain: "137"`, `chain: "10"`, 1)
	_, err := ParseSeed([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "unknown chain") {
		t.Fatalf("expected unknown chain error, got %v", err)
	}
}

func TestParseSeed_MissingRequiredField(t *testing.T) {
	_, err := ParseSeed([]byte("chains:\n  - name: Nameless\n"))
	if err == nil {
		t.Fatal("expected validation error for missing chain_id")
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleSeed), 0o600); err != nil {
		t.Fatalf("failed to write seed: %v", err)
	}
	if _, err := LoadSeed(path); err != nil {
		t.Fatalf("LoadSeed() failed: %v", err)
	}
	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
