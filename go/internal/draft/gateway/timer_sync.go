package gateway

// Simple Timer Synchronization - No complex clock sync needed
//
// Strategy: Send remaining duration to the client, let the client count
// down visually.
// - clock_update messages carry remaining_seconds (spec.md §6.2)
// - Client counts down from that value between updates
// - The Session Coordinator's clock is authoritative for the actual
//   auto-pick timeout; the client timer is visual feedback only
// - On reconnect, the next clock_update resyncs the client

// No complex clock synchronization needed - keep it simple!
