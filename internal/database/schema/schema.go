package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Accounts: one row per player, scalar progression fields plus the embedded
-- game data blob.
CREATE TABLE IF NOT EXISTS accounts (
    player_id VARCHAR(64) PRIMARY KEY,
    username VARCHAR(255) NOT NULL DEFAULT 'Gladiator',
    gold INTEGER NOT NULL DEFAULT 1000,
    gems INTEGER NOT NULL DEFAULT 10,
    fame INTEGER NOT NULL DEFAULT 0,
    energy INTEGER NOT NULL DEFAULT 100,
    max_energy INTEGER NOT NULL DEFAULT 100,
    level INTEGER NOT NULL DEFAULT 1,
    experience INTEGER NOT NULL DEFAULT 0,
    daily_reward_claimed BOOLEAN NOT NULL DEFAULT FALSE,
    last_daily_reward TIMESTAMPTZ,
    daily_streak INTEGER NOT NULL DEFAULT 0,
    game_data JSONB NOT NULL DEFAULT '{}',
    last_active TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Battles: append-only fight log.
CREATE TABLE IF NOT EXISTS battles (
    battle_id UUID PRIMARY KEY,
    player_id VARCHAR(64) NOT NULL REFERENCES accounts(player_id) ON DELETE CASCADE,
    gladiator_id INTEGER NOT NULL,
    enemy_name VARCHAR(100) NOT NULL,
    difficulty VARCHAR(20) NOT NULL,
    victory BOOLEAN NOT NULL,
    damage_dealt INTEGER NOT NULL DEFAULT 0,
    damage_taken INTEGER NOT NULL DEFAULT 0,
    rewards JSONB NOT NULL DEFAULT '{}',
    battle_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_accounts_fame ON accounts(fame DESC);
CREATE INDEX IF NOT EXISTS idx_accounts_gold ON accounts(gold DESC);
CREATE INDEX IF NOT EXISTS idx_accounts_level ON accounts(level DESC, experience DESC);
CREATE INDEX IF NOT EXISTS idx_accounts_last_active ON accounts(last_active);
CREATE INDEX IF NOT EXISTS idx_battles_player_id ON battles(player_id, battle_time DESC);
`
