package entity

// TabID uniquely identifies a tab.
type TabID string
