// Package journal records the outcome of every session operation so that
// failure patterns can be inspected later, for example repeated WrongData
// results that indicate tampered server responses.
//
// Outcomes are persisted as their stable integer codes. Reading an entry
// back decodes the code with outcome.FromCode, so codes written by newer
// builds degrade to GeneralFailure instead of failing.
//
// Two stores are provided:
//
//   - MemoryStore keeps entries in process memory.
//   - RedisStore keeps one capped list per session in Redis using
//     github.com/redis/go-redis/v9.
//
// # Usage
//
//	var cfg journal.RedisConfig
//	config.MustLoad(&cfg)
//
//	client, err := journal.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := journal.NewRedisStore(client, cfg)
//
//	sess, err := session.New(setup, core, session.WithRecorder(store))
//
//	entries, _ := store.List(ctx, sess.ID(), 50)
//	if journal.Summarize(entries)[outcome.WrongData] > 0 {
//	    // flag the device
//	}
package journal
