package graph

const registrySchema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	checkMember(id: String!): Member!
	allMembers: [Member!]!
}

type Mutation {
	addMember(member: MemberInput!): Detail!
	deleteMember(id: String!): Detail!
}

input MemberInput {
	id: String!
	name: String!
	surname: String!
}

type Member {
	id: String!
	name: String!
	surname: String!
	registrationDate: String!
}

type Detail {
	detail: String!
	warning: String
}
`

const ledgerSchema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	freeFieldSlots(date: String!, category: String!): FreeSlots!
	freePool(date: String!): PoolAvailability!
	upcomingBookings(id: String!): MemberBookings!
}

type Mutation {
	bookField(booking: FieldBookingInput!): BookingCreated!
	cancelField(booking: FieldBookingInput!): Detail!
	bookPool(booking: PoolBookingInput!): BookingCreated!
	cancelPool(booking: PoolCancelInput!): Detail!
	purgeBookings(id: String!): PurgeResult!
}

input FieldBookingInput {
	id: String!
	date: String!
	hour: Int!
	category: String!
}

input PoolBookingInput {
	id: String!
	date: String!
	beds: Int!
	umbrellas: Int!
}

input PoolCancelInput {
	id: String!
	date: String!
	beds: Int
	umbrellas: Int
}

type FreeSlots {
	date: String!
	category: String!
	hours: [Int!]!
}

type PoolAvailability {
	date: String!
	bedUnitsFree: Int!
	umbrellaUnitsFree: Int!
	inSeason: Boolean!
}

type BookingCreated {
	detail: String!
	bookingId: ID!
}

type Detail {
	detail: String!
}

type PurgeResult {
	fieldBookings: Int!
	poolBookings: Int!
}

type FieldBooking {
	id: ID!
	date: String!
	hour: Int!
	category: String!
}

type PoolBooking {
	id: ID!
	date: String!
	beds: Int!
	umbrellas: Int!
}

type MemberBookings {
	memberId: String!
	fields: [FieldBooking!]!
	pool: [PoolBooking!]!
}
`
