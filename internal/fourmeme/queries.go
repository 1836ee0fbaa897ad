package fourmeme

// The four GraphQL documents sent to Bitquery. Variable names in each
// document match the keys of the variables map built by the operation that
// sends it.

const trendingTokensQuery = `
query GetTrendingTokens($limit: Int!, $time_24hr_ago: DateTime) {
  EVM(network: bsc) {
    DEXTradeByTokens(
      limit: {count: $limit}
      orderBy: {descendingByField: "trades_24hr"}
      where: {
        Trade: {Success: true}
        Block: {Time: {since: $time_24hr_ago}}
      }
    ) {
      Trade {
        Currency {
          Name
          Symbol
          SmartContract
        }
      }
      volume_24hr: sum(of: Trade_Side_AmountInUSD)
      trades_24hr: count
    }
  }
}`

const bondingCurveQuery = `
query GetBondingCurveProgress($tokenAddress: String!) {
  EVM(network: bsc) {
    Transfers(
      where: {
        Transfer: {
          Currency: {SmartContract: {is: $tokenAddress}}
          Receiver: {is: "0x5c952063c7fc8610FFDB798152D69F0B9550762b"}
        }
      }
      orderBy: {descendingByField: "Block_Time"}
      limit: {count: 1}
    ) {
      Transfer {
        Amount
        Currency {
          Name
          Symbol
          SmartContract
        }
      }
      Block {
        Time
      }
    }
  }
}`

const latestTradesQuery = `
query GetLatestTrades($tokenAddress: String!, $limit: Int!) {
  EVM(network: bsc) {
    DEXTrades(
      where: {
        Trade: {
          Buy: {Currency: {SmartContract: {is: $tokenAddress}}}
          Dex: {ProtocolName: {is: "fourmeme_v1"}}
          Success: true
        }
      }
      orderBy: {descendingByField: "Block_Time"}
      limit: {count: $limit}
    ) {
      Transaction {
        Hash
      }
      Block {
        Time
        Number
      }
      Trade {
        Buy {
          Buyer
          Amount
          AmountInUSD
          Price
          Currency {
            Symbol
            Name
          }
        }
        Sell {
          Seller
          Amount
          Currency {
            Symbol
            Name
          }
        }
      }
    }
  }
}`

const migrationStatusQuery = `
query GetMigrationStatus($tokenAddress: String!) {
  EVM(network: bsc) {
    DEXTrades(
      where: {
        Trade: {
          Buy: {Currency: {SmartContract: {is: $tokenAddress}}}
          Dex: {ProtocolName: {not: "fourmeme_v1"}}
          Success: true
        }
      }
      orderBy: {ascendingByField: "Block_Time"}
      limit: {count: 5}
    ) {
      Trade {
        Dex {
          ProtocolName
          SmartContract
        }
        Buy {
          Currency {
            Symbol
            Name
          }
        }
        Sell {
          Currency {
            Symbol
            Name
          }
        }
      }
      Block {
        Time
      }
    }
  }
}`
