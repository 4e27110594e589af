package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		giveNetworkID string
		giveChainID   string
		want          Network
		wantErr       string
	}{
		{
			name:          "by network id",
			giveNetworkID: "ethereum-mainnet",
			want:          Network{ProtocolFamily: "evm", ChainID: "1", NetworkID: "ethereum-mainnet"},
		},
		{
			name:        "by chain id",
			giveChainID: "11155111",
			want:        Network{ProtocolFamily: "evm", ChainID: "11155111", NetworkID: "ethereum-sepolia"},
		},
		{
			name:          "chain id takes precedence",
			giveNetworkID: "ethereum-mainnet",
			giveChainID:   "8453",
			want:          Network{ProtocolFamily: "evm", ChainID: "8453", NetworkID: "base-mainnet"},
		},
		{
			name: "defaults to base sepolia",
			want: Network{ProtocolFamily: "evm", ChainID: "84532", NetworkID: "base-sepolia"},
		},
		{
			name:          "unknown network id",
			giveNetworkID: "dogecoin-mainnet",
			wantErr:       `unknown network: network id "dogecoin-mainnet"`,
		},
		{
			name:        "unknown chain id",
			giveChainID: "999999999",
			wantErr:     "unknown network: chain id 999999999",
		},
		{
			name:        "malformed chain id",
			giveChainID: "0x1",
			wantErr:     `unknown network: invalid chain id "0x1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.giveNetworkID, tt.giveChainID)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrUnknownNetwork)
				require.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ChainFor(t *testing.T) {
	t.Parallel()

	n, err := Resolve("ethereum-mainnet", "")
	require.NoError(t, err)

	got, err := ChainFor(n)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), got.ID)
	assert.Equal(t, uint64(5009297550715157269), got.Selector)
	assert.Equal(t, "ethereum-mainnet", got.Name)
	assert.Equal(t, int32(18), got.NativeCurrency.Decimals)
	require.Len(t, got.RPCs, 1)
	assert.Equal(t, "https://eth.llamarpc.com", got.RPCs[0].PreferredEndpoint())

	_, err = ChainFor(Network{NetworkID: "unknown"})
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func Test_Network_EVMChainID(t *testing.T) {
	t.Parallel()

	id, err := Network{ChainID: "84532"}.EVMChainID()
	require.NoError(t, err)
	assert.Equal(t, uint64(84532), id)

	_, err = Network{ChainID: "base"}.EVMChainID()
	require.ErrorContains(t, err, `invalid chain id "base"`)
}

func Test_RPC_PreferredEndpoint(t *testing.T) {
	t.Parallel()

	rpc := RPC{HTTPURL: "http://localhost:8545", WSURL: "ws://localhost:8546"}
	assert.Equal(t, "http://localhost:8545", rpc.PreferredEndpoint())

	rpc.PreferredURLScheme = URLSchemeWS
	assert.Equal(t, "ws://localhost:8546", rpc.PreferredEndpoint())
}

func Test_Registry_Apply(t *testing.T) {
	t.Parallel()

	anvil := []RPC{{RPCName: "anvil", HTTPURL: "http://127.0.0.1:8545"}}

	t.Run("rejected manifest leaves the registry unchanged", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		err := r.Apply(Manifest{Networks: []NetworkSpec{
			{NetworkID: "local-anvil", ChainID: 31337, RPCs: anvil},
			{NetworkID: "shadow-base", ChainID: 84532, RPCs: anvil},
		}})
		require.ErrorContains(t, err, `chain id 84532 is already registered to network "base-sepolia"`)

		assert.NotContains(t, r.NetworkIDs(), "local-anvil")
		n, err := r.Resolve("", "84532")
		require.NoError(t, err)
		assert.Equal(t, "base-sepolia", n.NetworkID)
	})

	t.Run("known network keeps its own chain id", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		require.NoError(t, r.Apply(Manifest{Networks: []NetworkSpec{
			{NetworkID: "base-sepolia", ChainID: 84532, RPCs: anvil},
		}}))

		n, err := r.Resolve("", "84532")
		require.NoError(t, err)
		assert.Equal(t, "base-sepolia", n.NetworkID)
	})

	t.Run("default registry copies are independent", func(t *testing.T) {
		t.Parallel()

		r := DefaultRegistry()
		assert.NotSame(t, r, DefaultRegistry())
		require.NoError(t, r.Apply(Manifest{Networks: []NetworkSpec{
			{NetworkID: "isolated-net", ChainID: 424242, RPCs: anvil},
		}}))

		_, err := DefaultRegistry().Resolve("isolated-net", "")
		require.ErrorIs(t, err, ErrUnknownNetwork)
		_, err = Resolve("", "424242")
		require.ErrorIs(t, err, ErrUnknownNetwork)
	})
}

func Test_LoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  string
		assertFn func(t *testing.T, r *Registry)
	}{
		{
			name:     "yaml overrides known network and adds a new one",
			filename: "networks.yaml",
			content: `
networks:
  - network_id: ethereum-mainnet
    rpcs:
      - rpc_name: private
        preferred_url_scheme: ws
        ws_url: wss://eth.example.com
  - network_id: local-anvil
    chain_id: 31337
    rpcs:
      - rpc_name: anvil
        http_url: http://127.0.0.1:8545
    native_currency:
      name: Test Ether
      symbol: tETH
      decimals: 18
`,
			assertFn: func(t *testing.T, r *Registry) {
				t.Helper()

				n, err := r.Resolve("ethereum-mainnet", "")
				require.NoError(t, err)
				c, err := r.Chain(n)
				require.NoError(t, err)
				require.Len(t, c.RPCs, 1)
				assert.Equal(t, "wss://eth.example.com", c.RPCs[0].PreferredEndpoint())

				n, err = r.Resolve("", "31337")
				require.NoError(t, err)
				assert.Equal(t, "local-anvil", n.NetworkID)
				c, err = r.Chain(n)
				require.NoError(t, err)
				assert.Equal(t, "tETH", c.NativeCurrency.Symbol)

				assert.Contains(t, r.NetworkIDs(), "local-anvil")
			},
		},
		{
			name:     "toml",
			filename: "networks.toml",
			content: `
[[networks]]
network_id = "base-sepolia"

[[networks.rpcs]]
rpc_name = "alchemy"
http_url = "https://base-sepolia.example.com"
`,
			assertFn: func(t *testing.T, r *Registry) {
				t.Helper()

				n, err := r.Resolve("base-sepolia", "")
				require.NoError(t, err)
				c, err := r.Chain(n)
				require.NoError(t, err)
				require.Len(t, c.RPCs, 1)
				assert.Equal(t, "alchemy", c.RPCs[0].RPCName)
			},
		},
		{
			name:     "new network without chain id",
			filename: "networks.yaml",
			content: `
networks:
  - network_id: mystery
    rpcs:
      - http_url: http://127.0.0.1:8545
`,
			wantErr: "chain id is required for a new network",
		},
		{
			name:     "chain id owned by another network",
			filename: "networks.yaml",
			content: `
networks:
  - network_id: my-mainnet
    chain_id: 1
    rpcs:
      - http_url: http://127.0.0.1:8545
`,
			wantErr: `chain id 1 is already registered to network "ethereum-mainnet"`,
		},
		{
			name:     "missing rpcs",
			filename: "networks.yaml",
			content: `
networks:
  - network_id: ethereum-mainnet
`,
			wantErr: "at least one RPC is required",
		},
		{
			name:     "malformed yaml",
			filename: "networks.yaml",
			content:  "networks: [",
			wantErr:  "failed to parse networks file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			r, err := LoadFile(path)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.assertFn(t, r)

			// The default registry is never mutated by a file load.
			n, err := Resolve("ethereum-mainnet", "")
			require.NoError(t, err)
			c, err := ChainFor(n)
			require.NoError(t, err)
			assert.Equal(t, "https://eth.llamarpc.com", c.RPCs[0].PreferredEndpoint())
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read networks file")
}
