package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id varchar primary key,
  experiment varchar not null,
  time datetime,
  agent1 varchar,
  agent2 varchar,
  starting int,
  phase varchar,
  winner int,
  sequences1 int,
  sequences2 int,
  moves int
)`

const createAgentView = `
CREATE VIEW IF NOT EXISTS agent_games (
  id, experiment, agent, opponent, seat, result, moves
) AS
SELECT id, experiment, agent1, agent2, 1,
       CASE winner WHEN 1 THEN 'win' WHEN 2 THEN 'lose' ELSE 'draw' END,
       moves
 FROM games
UNION ALL
SELECT id, experiment, agent2, agent1, 2,
       CASE winner WHEN 2 THEN 'win' WHEN 1 THEN 'lose' ELSE 'draw' END,
       moves
 FROM games
`

const insertStmt = `
INSERT INTO games (id, experiment, time, agent1, agent2, starting, phase, winner, sequences1, sequences2, moves)
VALUES (:id, :experiment, :time, :agent1, :agent2, :starting, :phase, :winner, :sequences1, :sequences2, :moves)
`

const selectGames = `
SELECT id, experiment, time, agent1, agent2, starting, phase, winner, sequences1, sequences2, moves
 FROM games WHERE experiment = ? ORDER BY time, id
`

const selectStandings = `
SELECT agent,
       COUNT(*) AS games,
       SUM(CASE result WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       SUM(CASE result WHEN 'lose' THEN 1 ELSE 0 END) AS losses,
       SUM(CASE result WHEN 'draw' THEN 1 ELSE 0 END) AS draws
 FROM agent_games WHERE experiment = ?
 GROUP BY agent ORDER BY wins DESC, agent
`
